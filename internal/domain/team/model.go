package team

import "time"

type Role string

const (
	RoleCofounder  Role = "cofounder"
	RoleFreelancer Role = "freelancer"
	RoleOther      Role = "other"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCofounder, RoleFreelancer, RoleOther:
		return true
	}
	return false
}

// TeamMember is a person who can be assigned to clients. Members are never
// hard-deleted; IsActive filters them out of reads.
type TeamMember struct {
	ID         int64     `gorm:"primaryKey;autoIncrement"`
	Name       string    `gorm:"not null"`
	WhatsappNo string    `gorm:"not null"`
	Country    string    `gorm:"not null"`
	Role       Role      `gorm:"type:text;not null"`
	Avatar     *string
	IsActive   bool      `gorm:"not null;default:true"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
}

type CreateTeamMemberInput struct {
	Name       string
	WhatsappNo string
	Country    string
	Role       Role
	Avatar     *string
}
