package main

import (
	"context"

	"plume.ink/plume-blog-server/app/domain/auth"
	"plume.ink/plume-blog-server/app/domain/setting"
	"plume.ink/plume-blog-server/config/environment_variables"
)

type DataInitializer struct {
	AuthService    *auth.AuthService
	SettingService *setting.Service
}

func (d *DataInitializer) Install(ctx context.Context) error {
	if err := d.AuthService.SeedAdmins(ctx); err != nil {
		return err
	}
	return d.applyStoredSettings(ctx)
}

// applyStoredSettings copies stored SMTP settings over the env defaults so
// notification mail follows the admin UI without a restart variable change.
func (d *DataInitializer) applyStoredSettings(ctx context.Context) error {
	smtp, err := d.SettingService.GetSMTPSettings(ctx)
	if err != nil {
		return err
	}
	if smtp != nil && smtp.Host != "" {
		env := &environment_variables.EnvironmentVariables
		env.SMTP_HOST = smtp.Host
		env.SMTP_PORT = smtp.Port
		env.SMTP_USERNAME = smtp.Username
		if smtp.Password != "" {
			env.SMTP_PASSWORD = smtp.Password
		}
		env.SMTP_SENDER_EMAIL = smtp.FromEmail
	}
	return nil
}
