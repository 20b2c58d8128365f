package entity

import "time"

// CandidateProfile holds data specific to the candidate role.
// Binary assets are loaded on demand; HasCV and HasPhoto report their presence.
type CandidateProfile struct {
	ID           uint       `json:"id"`
	AccountID    uint       `json:"account_id"`
	FullName     string     `json:"full_name"`
	BirthDate    *time.Time `json:"birth_date,omitempty"`
	Gender       string     `json:"gender"`
	LinkedInURL  string     `json:"linkedin_url"`
	GitHubURL    string     `json:"github_url"`
	PortfolioURL string     `json:"portfolio_url"`
	HasCV        bool       `json:"has_cv"`
	HasPhoto     bool       `json:"has_photo"`

	// Only populated on creation.
	CV    []byte `json:"-"`
	Photo []byte `json:"-"`
}

// CandidateProfilePatch lists the profile fields to change. Nil fields stay untouched.
type CandidateProfilePatch struct {
	FullName     *string
	BirthDate    *time.Time
	Gender       *string
	LinkedInURL  *string
	GitHubURL    *string
	PortfolioURL *string
}

// IsEmpty reports whether the patch changes nothing.
func (p *CandidateProfilePatch) IsEmpty() bool {
	return p == nil || (p.FullName == nil && p.BirthDate == nil && p.Gender == nil &&
		p.LinkedInURL == nil && p.GitHubURL == nil && p.PortfolioURL == nil)
}

// EmployerProfile holds data specific to the employer role.
type EmployerProfile struct {
	ID          uint   `json:"id"`
	AccountID   uint   `json:"account_id"`
	CompanyName string `json:"company_name"`
	TaxID       string `json:"tax_id"`
	Category    string `json:"category"`
	Description string `json:"description"`
	HasLogo     bool   `json:"has_logo"`

	// Only populated on creation.
	Logo []byte `json:"-"`
}

// AdminProfile is the bare profile row of an administrator.
type AdminProfile struct {
	ID        uint `json:"id"`
	AccountID uint `json:"account_id"`
}
