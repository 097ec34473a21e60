package models

// All entity IDs are opaque unique strings generated at creation time.

const (
	StatusOnline    = "online"
	StatusIdle      = "idle"
	StatusDnd       = "dnd"
	StatusInvisible = "invisible"
)

const (
	ChannelTypeText         = "text"
	ChannelTypeAnnouncement = "announcement"
)

const (
	AttachmentTypeImage = "image"
	AttachmentTypeVideo = "video"
	AttachmentTypeFile  = "file"
)

type User struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	Discriminator string `json:"discriminator"`
	Email         string `json:"email,omitempty"`
	Password      []byte `json:"password,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
	BannerColor   string `json:"bannerColor,omitempty"`
	BannerURL     string `json:"bannerUrl,omitempty"`
	Status        string `json:"status"`
	CustomStatus  string `json:"customStatus,omitempty"`
	IsBot         bool   `json:"isBot,omitempty"`
	AboutMe       string `json:"aboutMe,omitempty"`
}

// Tag is the human readable username#discriminator pair. Uniqueness of the
// pair is not enforced anywhere.
func (u *User) Tag() string {
	return u.Username + "#" + u.Discriminator
}

type Attachment struct {
	ID   string `json:"id"`
	URL  string `json:"url"`
	Type string `json:"type"`
}

type Emoji struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	CreatorID string `json:"creatorId"`
}

type Message struct {
	ID          string       `json:"id"`
	ChannelID   string       `json:"channelId"`
	AuthorID    string       `json:"authorId"`
	Content     string       `json:"content"`
	Timestamp   int64        `json:"timestamp"`
	Attachments []Attachment `json:"attachments,omitempty"`
	Mentions    []string     `json:"mentions,omitempty"`
	IsSystem    bool         `json:"isSystem,omitempty"`
}

type Channel struct {
	ID         string `json:"id"`
	ServerID   string `json:"serverId"`
	CategoryID string `json:"categoryId,omitempty"`
	Name       string `json:"name"`
	Type       string `json:"type"`
}

type ChannelCategory struct {
	ID       string `json:"id"`
	ServerID string `json:"serverId"`
	Name     string `json:"name"`
}

type Role struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Color       string   `json:"color"`
	Permissions []string `json:"permissions"`
}

type Server struct {
	ID          string              `json:"id"`
	Name        string              `json:"name"`
	Icon        string              `json:"icon,omitempty"`
	BannerURL   string              `json:"bannerUrl,omitempty"`
	OwnerID     string              `json:"ownerId"`
	IsPublic    bool                `json:"isPublic"`
	Channels    []Channel           `json:"channels"`
	Categories  []ChannelCategory   `json:"categories"`
	Members     []string            `json:"members"`
	Roles       []Role              `json:"roles"`
	MemberRoles map[string][]string `json:"memberRoles"`
	Emojis      []Emoji             `json:"emojis"`
	InviteCode  string              `json:"inviteCode,omitempty"`
}

// DMChannel holds 2 recipients for a direct message, more for a group.
// Name, Icon and OwnerID are only set for groups.
type DMChannel struct {
	ID           string   `json:"id"`
	RecipientIDs []string `json:"recipientIds"`
	Name         string   `json:"name,omitempty"`
	Icon         string   `json:"icon,omitempty"`
	OwnerID      string   `json:"ownerId,omitempty"`
}

type Game struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Code        string `json:"code,omitempty"`
}

// Modals tracks which modal (if any) the client has open. The pointer fields
// carry the entity the modal edits, nil means closed.
type Modals struct {
	Settings       bool    `json:"settings"`
	CreateServer   bool    `json:"createServer"`
	CreateGroupDm  bool    `json:"createGroupDm"`
	ServerSettings *string `json:"serverSettings"`
	GameCenter     bool    `json:"gameCenter"`
	AddBot         bool    `json:"addBot"`
	CreateChannel  *string `json:"createChannel"`
	CreateCategory *string `json:"createCategory"`
	InvitePeople   *string `json:"invitePeople"`
	AddGame        bool    `json:"addGame"`
	UserProfile    *string `json:"userProfile"`
}

// UserPatch enumerates the profile fields a user may update on themselves.
// Nil fields are left untouched.
type UserPatch struct {
	Username     *string `json:"username,omitempty"`
	Avatar       *string `json:"avatar,omitempty"`
	BannerColor  *string `json:"bannerColor,omitempty"`
	BannerURL    *string `json:"bannerUrl,omitempty"`
	Status       *string `json:"status,omitempty"`
	CustomStatus *string `json:"customStatus,omitempty"`
	AboutMe      *string `json:"aboutMe,omitempty"`
}

// ServerPatch enumerates the server settings the store allows merging.
type ServerPatch struct {
	Name      *string `json:"name,omitempty"`
	Icon      *string `json:"icon,omitempty"`
	BannerURL *string `json:"bannerUrl,omitempty"`
	IsPublic  *bool   `json:"isPublic,omitempty"`
}

type ConfigFile struct {
	Address           string
	Port              string
	TlsCert           string
	TlsKey            string
	PrintHttpRequests bool
	JwtSecret         string
	SnowflakeWorkerID int64
	SelfContained     bool
	DbFile            string
	RedisAddress      string
	RedisPassword     string
	GeminiApiKey      string
	GeminiModel       string
}
