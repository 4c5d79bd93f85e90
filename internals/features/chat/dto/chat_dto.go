package dto

import "strings"

type SendMessageRequest struct {
	Body string `json:"body" validate:"required,min=1,max=4000"`
}

func (r *SendMessageRequest) Normalize() {
	r.Body = strings.TrimSpace(r.Body)
}
