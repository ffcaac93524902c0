package setting

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"plume.ink/plume-blog-server/app/utils/crypto"
	"plume.ink/plume-blog-server/app/utils/logger"
	"plume.ink/plume-blog-server/config/environment_variables"
)

type Service struct {
	repo SystemSettingRepository
}

func NewService(repo SystemSettingRepository) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) defaultBlogSettings() *BlogSettings {
	return &BlogSettings{
		SiteTitle:       "Plume",
		SiteDescription: "",
		ArticlePageSize: 10,
		CommentPageSize: 5,
		LinksShowType:   "i",
	}
}

func (s *Service) GetBlogSettings(ctx context.Context) (*BlogSettings, error) {
	setting, err := s.repo.FindByKey(ctx, SettingKeyBlog)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return s.defaultBlogSettings(), nil
		}
		return nil, err
	}

	payload := setting.Payload
	result := s.defaultBlogSettings()
	if title, ok := payload["site_title"].(string); ok {
		result.SiteTitle = title
	}
	if description, ok := payload["site_description"].(string); ok {
		result.SiteDescription = description
	}
	if pageSize, ok := payload["article_page_size"].(float64); ok && pageSize > 0 {
		result.ArticlePageSize = int(pageSize)
	}
	if pageSize, ok := payload["comment_page_size"].(float64); ok && pageSize > 0 {
		result.CommentPageSize = int(pageSize)
	}
	if showType, ok := payload["links_show_type"].(string); ok && showType != "" {
		result.LinksShowType = showType
	}
	return result, nil
}

type UpdateBlogSettingsInput struct {
	SiteTitle       string
	SiteDescription string
	ArticlePageSize int
	CommentPageSize int
	LinksShowType   string
	ActorID         *uint
	ActorEmail      *string
}

func (s *Service) UpdateBlogSettings(ctx context.Context, input UpdateBlogSettingsInput) (*BlogSettings, error) {
	if strings.TrimSpace(input.SiteTitle) == "" {
		return nil, fmt.Errorf("site_title is required")
	}
	if input.ArticlePageSize <= 0 {
		return nil, fmt.Errorf("article_page_size must be positive")
	}
	if input.CommentPageSize <= 0 {
		return nil, fmt.Errorf("comment_page_size must be positive")
	}

	payload := map[string]interface{}{
		"site_title":        strings.TrimSpace(input.SiteTitle),
		"site_description":  strings.TrimSpace(input.SiteDescription),
		"article_page_size": input.ArticlePageSize,
		"comment_page_size": input.CommentPageSize,
		"links_show_type":   input.LinksShowType,
		"updated_at":        time.Now().UTC().Format(time.RFC3339),
	}

	setting := &SystemSetting{
		Key:            SettingKeyBlog,
		Payload:        payload,
		LastUpdatedBy:  input.ActorID,
		UpdatedByEmail: input.ActorEmail,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return &BlogSettings{
		SiteTitle:       payload["site_title"].(string),
		SiteDescription: payload["site_description"].(string),
		ArticlePageSize: input.ArticlePageSize,
		CommentPageSize: input.CommentPageSize,
		LinksShowType:   input.LinksShowType,
	}, nil
}

func (s *Service) defaultSMTPSettings() *SMTPSettings {
	return &SMTPSettings{
		Enabled:     false,
		Host:        "",
		Port:        587,
		Username:    "",
		FromEmail:   "",
		HasPassword: false,
	}
}

// GetSMTPSettings returns the stored SMTP configuration with the password
// decrypted; the password never leaves the database in the clear.
func (s *Service) GetSMTPSettings(ctx context.Context) (*SMTPSettings, error) {
	setting, err := s.repo.FindByKey(ctx, SettingKeySMTP)
	if err != nil {
		if errors.Is(err, ErrSettingNotFound) {
			return s.defaultSMTPSettings(), nil
		}
		return nil, err
	}

	payload := setting.Payload
	result := s.defaultSMTPSettings()
	if enabled, ok := payload["enabled"].(bool); ok {
		result.Enabled = enabled
	}
	if host, ok := payload["host"].(string); ok {
		result.Host = host
	}
	if port, ok := payload["port"].(float64); ok {
		result.Port = int(port)
	}
	if username, ok := payload["username"].(string); ok {
		result.Username = username
	}
	if fromEmail, ok := payload["from_email"].(string); ok {
		result.FromEmail = fromEmail
	}
	if encrypted, ok := payload["password"].(string); ok && encrypted != "" {
		secret := environment_variables.EnvironmentVariables.SETTINGS_SECRET
		plain, err := crypto.DecryptString(secret, encrypted)
		if err != nil {
			logger.GetLogger().Errorf("failed to decrypt stored SMTP password: %v", err)
		} else {
			result.Password = plain
			result.HasPassword = true
		}
	}
	return result, nil
}

type UpdateSMTPSettingsInput struct {
	Enabled    bool
	Host       string
	Port       int
	Username   string
	Password   *string
	FromEmail  string
	ActorID    *uint
	ActorEmail *string
}

func (s *Service) UpdateSMTPSettings(ctx context.Context, input UpdateSMTPSettingsInput) (*SMTPSettings, error) {
	if strings.TrimSpace(input.Host) == "" {
		return nil, fmt.Errorf("host is required")
	}
	if input.Port <= 0 {
		return nil, fmt.Errorf("port must be positive")
	}
	if strings.TrimSpace(input.FromEmail) == "" {
		return nil, fmt.Errorf("from_email is required")
	}

	existing, err := s.repo.FindByKey(ctx, SettingKeySMTP)
	var existingPayload map[string]interface{}
	if err != nil {
		if !errors.Is(err, ErrSettingNotFound) {
			return nil, err
		}
		existingPayload = map[string]interface{}{}
	} else {
		existingPayload = existing.Payload
	}

	var storedPassword string
	if value, ok := existingPayload["password"].(string); ok {
		storedPassword = value
	}

	payload := map[string]interface{}{
		"enabled":    input.Enabled,
		"host":       strings.TrimSpace(input.Host),
		"port":       input.Port,
		"username":   strings.TrimSpace(input.Username),
		"from_email": strings.TrimSpace(input.FromEmail),
		"updated_at": time.Now().UTC().Format(time.RFC3339),
	}
	hasPassword := storedPassword != ""
	if input.Password != nil {
		passwordValue := strings.TrimSpace(*input.Password)
		if passwordValue == "" {
			payload["password"] = ""
			hasPassword = false
		} else {
			secret := environment_variables.EnvironmentVariables.SETTINGS_SECRET
			encrypted, err := crypto.EncryptString(secret, passwordValue)
			if err != nil {
				return nil, fmt.Errorf("failed to encrypt SMTP password: %w", err)
			}
			payload["password"] = encrypted
			hasPassword = true
		}
	} else {
		payload["password"] = storedPassword
	}
	payload["has_password"] = hasPassword

	setting := &SystemSetting{
		Key:            SettingKeySMTP,
		Payload:        payload,
		LastUpdatedBy:  input.ActorID,
		UpdatedByEmail: input.ActorEmail,
	}
	if err := s.repo.Upsert(ctx, setting); err != nil {
		return nil, err
	}

	return &SMTPSettings{
		Enabled:     input.Enabled,
		Host:        payload["host"].(string),
		Port:        input.Port,
		Username:    payload["username"].(string),
		FromEmail:   payload["from_email"].(string),
		HasPassword: hasPassword,
	}, nil
}
