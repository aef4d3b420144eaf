package api

// ContactRequest is the POST /api/contact body.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

// LoginRequest is the POST /api/auth/login body.
type LoginRequest struct {
	Password string `json:"password"`
}

// GoogleAuthRequest is the POST /api/auth/google body.
type GoogleAuthRequest struct {
	Token string `json:"token"`
}

// AuthResponse is returned by both login paths. Token is a short-lived
// session token, not the admin password.
type AuthResponse struct {
	Success   bool   `json:"success"`
	Token     string `json:"token"`
	UserEmail string `json:"userEmail,omitempty"`
}

// AuthConfigResponse exposes the public Google client ID to the frontend.
type AuthConfigResponse struct {
	ClientID string `json:"clientId"`
}

// ReorderRequest is the POST /api/admin/reorder body.
type ReorderRequest struct {
	Table      string  `json:"table"`
	OrderedIDs []int64 `json:"orderedIds"`
}

// UploadResponse is returned by POST /api/admin/upload.
type UploadResponse struct {
	FilePath string `json:"filePath"`
}

// MessageResponse acknowledges a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// SettingRequest is the PUT /api/admin/settings/{key} body.
type SettingRequest struct {
	Value string `json:"value"`
	Mime  string `json:"mime"`
}
