package model

import "time"

// CandidateProfileModel mirrors the 'candidate_profiles' table. AccountID references accounts.id.
type CandidateProfileModel struct {
	ID           uint          `gorm:"primaryKey"`
	AccountID    uint          `gorm:"not null;uniqueIndex:uq_candidate_profiles_account"`
	Account      *AccountModel `gorm:"constraint:OnDelete:CASCADE"`
	CV           []byte        `gorm:"column:cv_pdf"`
	Photo        []byte        `gorm:"column:photo"`
	FullName     string        `gorm:"type:varchar(200);not null"`
	BirthDate    *time.Time    `gorm:"type:date"`
	Gender       string        `gorm:"type:varchar(30)"`
	LinkedInURL  string        `gorm:"column:linkedin_url;type:varchar(500)"`
	GitHubURL    string        `gorm:"column:github_url;type:varchar(500)"`
	PortfolioURL string        `gorm:"column:portfolio_url;type:varchar(500)"`
}

// TableName explicitly sets the table name for GORM.
func (CandidateProfileModel) TableName() string {
	return "candidate_profiles"
}

// EmployerProfileModel mirrors the 'employer_profiles' table. AccountID references accounts.id.
type EmployerProfileModel struct {
	ID          uint          `gorm:"primaryKey"`
	AccountID   uint          `gorm:"not null;uniqueIndex:uq_employer_profiles_account"`
	Account     *AccountModel `gorm:"constraint:OnDelete:CASCADE"`
	Logo        []byte        `gorm:"column:logo"`
	CompanyName string        `gorm:"type:varchar(200);not null"`
	TaxID       string        `gorm:"column:tax_id;type:varchar(20);not null;uniqueIndex:uq_employer_profiles_tax_id"`
	Category    string        `gorm:"type:varchar(100)"`
	Description string        `gorm:"type:text"`
}

// TableName explicitly sets the table name for GORM.
func (EmployerProfileModel) TableName() string {
	return "employer_profiles"
}

// AdminProfileModel mirrors the 'admin_profiles' table.
type AdminProfileModel struct {
	ID        uint          `gorm:"primaryKey"`
	AccountID uint          `gorm:"not null;uniqueIndex:uq_admin_profiles_account"`
	Account   *AccountModel `gorm:"constraint:OnDelete:CASCADE"`
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
