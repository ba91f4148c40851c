package services

import "errors"

// Errors shared across services and the HTTP error mapping.
var (
	ErrNotFound = errors.New("requested resource not found")

	// Validation
	ErrValidationFailed    = errors.New("validation failed")
	ErrNameRequired        = errors.New("name is required")
	ErrDepartmentRequired  = errors.New("department is required")
	ErrSportRequired       = errors.New("sport is required")
	ErrContactRequired     = errors.New("contact is required")
	ErrEmailInvalid        = errors.New("a valid email address is required")
	ErrStudentCountInvalid = errors.New("studentCount must be a positive integer")
	ErrPrnUIDRequired      = errors.New("prn_uid is required")
	ErrBirthDateInvalid    = errors.New("birthDate must be a valid YYYY-MM-DD date")
	ErrTitleRequired       = errors.New("title is required")
	ErrDescriptionRequired = errors.New("description is required")
	ErrNoticeDateInvalid   = errors.New("noticeDate must be a valid YYYY-MM-DD date")
	ErrDisplayOrderInvalid = errors.New("displayOrder must be a non-negative integer")
	ErrImageFileRequired   = errors.New("image file is required")

	// Conflicts
	ErrManagerEmailConflict = errors.New("a manager with this email already exists")
	ErrTeamNameConflict     = errors.New("a team with this name already exists")
	ErrSportNameConflict    = errors.New("a sport with this name already exists")
	ErrStudentPrnConflict   = errors.New("a student with this PRN/UID already exists")
	ErrSportInUse           = errors.New("sport cannot be deleted while managers are assigned to it")

	// Authentication
	ErrInvalidCredentials = errors.New("invalid email or contact")

	// Entity not-found (more context than the generic ErrNotFound)
	ErrManagerNotFound    = errors.New("manager not found")
	ErrTeamNotFound       = errors.New("team not found")
	ErrSportNotFound      = errors.New("sport not found")
	ErrStudentNotFound    = errors.New("student not found")
	ErrCoachNotFound      = errors.New("coach not found")
	ErrSelectionNotFound  = errors.New("student selection not found")
	ErrEventImageNotFound = errors.New("event image not found")
	ErrNoticeNotFound     = errors.New("notice not found")
	ErrLinkNotFound       = errors.New("registration link not found")

	// Uploads
	ErrUploadTypeNotAllowed = errors.New("file type is not allowed")
	ErrUploadTooLarge       = errors.New("file exceeds the maximum allowed size")

	// Links
	ErrLinkTokenGeneration = errors.New("failed to generate unique registration token")
)
