// Package catalog holds the entity model and the per-entity API clients the
// dashboard is built on. Every user-facing title or description is a
// bilingual Arabic/English pair; both halves are editable and the active
// locale picks which one is shown.
package catalog

import "time"

type Section struct {
	ID            string    `json:"id"`
	ArTitle       string    `json:"arTitle"`
	EnTitle       string    `json:"enTitle"`
	ArDescription string    `json:"arDescription,omitempty"`
	EnDescription string    `json:"enDescription,omitempty"`
	Unactive      bool      `json:"unactive"`
	PageCode      string    `json:"pageCode,omitempty"`
	OrderOnPage   int       `json:"orderOnPage,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	ModifiedAt    *time.Time `json:"modifiedAt,omitempty"`
	Services      []Service `json:"services,omitempty"`
}

type Service struct {
	ID              string     `json:"id"`
	SectionID       string     `json:"sectionId"`
	ParentServiceID string     `json:"parentServiceId,omitempty"`
	ArTitle         string     `json:"arTitle"`
	EnTitle         string     `json:"enTitle"`
	ArSubTitle      string     `json:"arSubTitle,omitempty"`
	EnSubTitle      string     `json:"enSubTitle,omitempty"`
	ArDescription   string     `json:"arDescription,omitempty"`
	EnDescription   string     `json:"enDescription,omitempty"`
	ThumbnailURL    string     `json:"thumbnailUrl"`
	ImageURL        string     `json:"imageUrl,omitempty"`
	VideoURL        string     `json:"videoUrl,omitempty"`
	PosterURL       string     `json:"posterUrl,omitempty"`
	Unactive        bool       `json:"unactive"`
	Order           int        `json:"order"`
	CreatedAt       time.Time  `json:"createdAt"`
	ModifiedAt      *time.Time `json:"modifiedAt,omitempty"`
	Images          []Image    `json:"images,omitempty"`
}

// HasParent reports whether this service is already a variant of another,
// which disqualifies it as a parent (the hierarchy is at most two levels).
func (s Service) HasParent() bool {
	return s.ParentServiceID != ""
}

type Image struct {
	ID       string `json:"id"`
	ImageURL string `json:"imageUrl"`
}

type ServiceItem struct {
	ID            string      `json:"id"`
	ServiceID     string      `json:"serviceId"`
	ArTitle       string      `json:"arTitle"`
	EnTitle       string      `json:"enTitle"`
	ArSubTitle    string      `json:"arSubTitle,omitempty"`
	EnSubTitle    string      `json:"enSubTitle,omitempty"`
	ArDescription string      `json:"arDescription,omitempty"`
	EnDescription string      `json:"enDescription,omitempty"`
	ThumbnailURL  string      `json:"thumbnailUrl"`
	ImageURL      string      `json:"imageUrl,omitempty"`
	VideoURL      string      `json:"videoUrl,omitempty"`
	PosterURL     string      `json:"posterUrl,omitempty"`
	Price         *float64    `json:"price,omitempty"`
	IsAvailable   bool        `json:"isAvailable"`
	IsNewArrival  bool        `json:"isNewArrival"`
	Unactive      bool        `json:"unactive"`
	Order         int         `json:"order"`
	CreatedAt     time.Time   `json:"createdAt"`
	ModifiedAt    *time.Time  `json:"modifiedAt,omitempty"`
	Attributes    []Attribute `json:"attributes,omitempty"`
}

type Contact struct {
	ID          string     `json:"id"`
	PhoneNumber string     `json:"phoneNumber"`
	IconURL     string     `json:"iconUrl"`
	IsPrimary   bool       `json:"isPrimary"`
	Unactive    bool       `json:"unActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	ModifiedAt  *time.Time `json:"modifiedAt,omitempty"`
}

type SocialMedia struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	IconURL      string     `json:"iconUrl"`
	DisplayOrder int        `json:"displayOrder"`
	Unactive     bool       `json:"unActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	ModifiedAt   *time.Time `json:"modifiedAt,omitempty"`
}

// Settings is the server-side singleton: application identity, password
// policy, OTP parameters, and outbound SMTP configuration.
type Settings struct {
	ID                               string `json:"id"`
	ApplicationName                  string `json:"applicationName"`
	ArSummary                        string `json:"arSummary,omitempty"`
	EnSummary                        string `json:"enSummary,omitempty"`
	OtpExpiryInMin                   int    `json:"otpExpiryInMin"`
	MisLoginAttemptsLimit            int    `json:"misLoginAttemptsLimit"`
	PasswordMinLength                int    `json:"passwordMinLength"`
	PasswordRequireUppercase         bool   `json:"passwordRequireUppercase"`
	PasswordRequireLowercase         bool   `json:"passwordRequireLowercase"`
	PasswordRequireNumber            bool   `json:"passwordRequireNumber"`
	PasswordRequireSpecialCharacter  bool   `json:"passwordRequireSpecialCharacter"`
	Host                             string `json:"host"`
	Port                             int    `json:"port"`
	UseSsl                           bool   `json:"useSsl"`
	Email                            string `json:"email"`
	Password                         string `json:"password,omitempty"`
}

type User struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	MobileNumber string     `json:"mobileNumber"`
	FullName     string     `json:"fullName"`
	LastLogin    *time.Time `json:"lastLogin,omitempty"`
	LastLogout   *time.Time `json:"lastLogout,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

type LoginResult struct {
	ID        string `json:"id"`
	TokenType string `json:"tokenType"`
	Token     string `json:"token"`
	Expires   int64  `json:"expires"`
	User      *User  `json:"user,omitempty"`
}

type VerifyResult struct {
	OtpSent bool `json:"otpSent"`
}

type Page struct {
	Code    string `json:"code"`
	ArTitle string `json:"arTitle"`
	EnTitle string `json:"enTitle"`
}

type Dashboard struct {
	ServicesCount     int               `json:"servicesCount"`
	ItemsCount        int               `json:"itemsCount"`
	ContactsCount     int               `json:"contactsCount"`
	SocialMediasCount int               `json:"socialMediasCount"`
	LastFiveServices  []DashboardEntry  `json:"lastFiveServices,omitempty"`
	LastFiveItems     []DashboardEntry  `json:"lastFiveItems,omitempty"`
}

type DashboardEntry struct {
	ArTitle      string `json:"arTitle"`
	EnTitle      string `json:"enTitle"`
	ArSubTitle   string `json:"arSubTitle,omitempty"`
	EnSubTitle   string `json:"enSubTitle,omitempty"`
	ThumbnailURL string `json:"thumbnailUrl"`
	IsAvailable  *bool  `json:"isAvailable,omitempty"`
	IsNewArrival *bool  `json:"isNewArrival,omitempty"`
}

// FileRef points at an upload field's value: a local path for a newly chosen
// file, an URL for one already stored server-side, or neither when unset.
type FileRef struct {
	Path string `json:"path,omitempty"`
	URL  string `json:"url,omitempty"`
}

func (f FileRef) IsZero() bool {
	return f.Path == "" && f.URL == ""
}

// Localized picks the field half matching the active locale, falling back to
// the other when it is empty.
func Localized(locale, ar, en string) string {
	if locale == "en" {
		if en != "" {
			return en
		}
		return ar
	}
	if ar != "" {
		return ar
	}
	return en
}

func (s Section) Title(locale string) string     { return Localized(locale, s.ArTitle, s.EnTitle) }
func (s Service) Title(locale string) string     { return Localized(locale, s.ArTitle, s.EnTitle) }
func (i ServiceItem) Title(locale string) string { return Localized(locale, i.ArTitle, i.EnTitle) }
