package domain

import "errors"

// Domain errors.
var (
	ErrIssueNotFound          = errors.New("issue not found")
	ErrTrackerAuth            = errors.New("jira rejected the access token")
	ErrTrackerUnavailable     = errors.New("jira request failed")
	ErrHostNotConfigured      = errors.New("jira host not configured (run 'jira-note settings set host <host>')")
	ErrTokenNotConfigured     = errors.New("jira token not configured (run 'jira-note settings set token <token>')")
	ErrTemplateNotConfigured  = errors.New("template file path not configured (run 'jira-note settings set template_file_path <path>')")
	ErrTemplateNotFound       = errors.New("template file not found")
	ErrTemplateInvalid        = errors.New("template is invalid")
	ErrEmptyRender            = errors.New("template rendered no output")
	ErrNoteNotFound           = errors.New("note not found")
	ErrEmptyIssueKey          = errors.New("issue key cannot be empty")
	ErrInvalidIssueKey        = errors.New("invalid issue key")
	ErrUnknownSetting         = errors.New("unknown setting")
	ErrInvalidSettingValue    = errors.New("invalid setting value")
	ErrSettingsFileCorrupted  = errors.New("settings file is corrupted")
	ErrSettingsDirUnavailable = errors.New("settings directory not available")
)
