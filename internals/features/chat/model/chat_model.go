package model

import (
	"time"

	"github.com/google/uuid"
)

// Satu room per lamaran (student ↔ mentor). Room dibuat lazy saat pesan
// pertama dikirim.
type ChatRoomModel struct {
	RoomID            uuid.UUID `gorm:"column:room_id;type:uuid;default:gen_random_uuid();primaryKey" json:"room_id"`
	RoomApplicationID uuid.UUID `gorm:"column:room_application_id;type:uuid;not null;uniqueIndex:uq_chat_room_application" json:"room_application_id"`
	RoomStudentID     uuid.UUID `gorm:"column:room_student_id;type:uuid;not null;index" json:"room_student_id"`
	RoomMentorID      uuid.UUID `gorm:"column:room_mentor_id;type:uuid;not null;index" json:"room_mentor_id"`
	RoomCreatedAt     time.Time `gorm:"column:room_created_at;autoCreateTime" json:"room_created_at"`
}

func (ChatRoomModel) TableName() string {
	return "chat_rooms"
}

type ChatMessageModel struct {
	MessageID        uuid.UUID `gorm:"column:message_id;type:uuid;default:gen_random_uuid();primaryKey" json:"message_id"`
	MessageRoomID    uuid.UUID `gorm:"column:message_room_id;type:uuid;not null;index" json:"message_room_id"`
	MessageSenderID  uuid.UUID `gorm:"column:message_sender_id;type:uuid;not null" json:"message_sender_id"`
	MessageBody      string    `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageIsRead    bool      `gorm:"column:message_is_read;not null;default:false" json:"message_is_read"`
	MessageCreatedAt time.Time `gorm:"column:message_created_at;autoCreateTime" json:"message_created_at"`
}

func (ChatMessageModel) TableName() string {
	return "chat_messages"
}
