// Package services file: services/errors.go
package services

import "github.com/pkg/errors"

// Sentinel errors returned by the content, account and upload services.
var (
	ErrNotFound            = errors.New("record not found")
	ErrDuplicateKey        = errors.New("a record with this key already exists")
	ErrFileTooLarge        = errors.New("file exceeds the upload size limit")
	ErrAccessDenied        = errors.New("access denied")
	ErrProtectedSuperAdmin = errors.New("a super admin account cannot be deleted")
	ErrSuperAdminOnly      = errors.New("only a super admin may change a super admin account")
	ErrRoleNotAssignable   = errors.New("only a super admin may assign the super admin role")
	ErrPasswordRequired    = errors.New("password is required for new users")
	ErrInvalidRole         = errors.New("unknown role")
	ErrInvalidLanguage     = errors.New("unsupported language")
)
