package common

import (
	"strings"

	"github.com/bwmarrin/discordgo"
	log "github.com/sirupsen/logrus"
)

// GetDisplayName returns the server-specific display name for a user
// Falls back to username if nickname is not set or if there's an error
func GetDisplayName(s *discordgo.Session, guildID, userID string) string {
	member, err := s.GuildMember(guildID, userID)
	if err == nil && member != nil {
		if member.Nick != "" {
			return member.Nick
		}
		if member.User != nil {
			return member.User.Username
		}
	}

	user, err := s.User(userID)
	if err == nil && user != nil {
		return user.Username
	}

	return "Unknown"
}

// GetUserMention returns a Discord mention string for a user
func GetUserMention(userID string) string {
	return "<@" + userID + ">"
}

// ParseUserMention extracts the user ID from a raw mention token like
// <@123456> or <@!123456>. It returns false for anything else.
func ParseUserMention(token string) (string, bool) {
	if !strings.HasPrefix(token, "<@") || !strings.HasSuffix(token, ">") {
		return "", false
	}
	id := strings.TrimSuffix(strings.TrimPrefix(token, "<@"), ">")
	id = strings.TrimPrefix(id, "!")
	if id == "" {
		return "", false
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	return id, true
}

// UserHasRole checks whether a guild member carries a role with the given name
func UserHasRole(s *discordgo.Session, guildID, userID, roleName string) bool {
	member, err := s.GuildMember(guildID, userID)
	if err != nil {
		log.Errorf("Failed to get guild member: %v", err)
		return false
	}

	for _, roleID := range member.Roles {
		role, err := s.State.Role(guildID, roleID)
		if err != nil {
			continue
		}
		if strings.EqualFold(role.Name, roleName) {
			return true
		}
	}

	return false
}

// FindRoleByName resolves a guild role by its name
func FindRoleByName(s *discordgo.Session, guildID, roleName string) (*discordgo.Role, bool) {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		log.Errorf("Failed to get guild %s from state: %v", guildID, err)
		return nil, false
	}
	for _, role := range guild.Roles {
		if strings.EqualFold(role.Name, roleName) {
			return role, true
		}
	}
	return nil, false
}
