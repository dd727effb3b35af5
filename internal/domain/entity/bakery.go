package entity

type VerificationStatus string

const (
	VerificationPending   VerificationStatus = "pending"
	VerificationVerified  VerificationStatus = "verified"
	VerificationRejected  VerificationStatus = "rejected"
	VerificationSuspended VerificationStatus = "suspended"
)

type DocumentType string

const (
	DocumentSiret    DocumentType = "siret"
	DocumentKbis     DocumentType = "kbis"
	DocumentIdentity DocumentType = "identity"
	DocumentDiploma  DocumentType = "diploma"
	DocumentRIB      DocumentType = "rib"
	DocumentOther    DocumentType = "other"
)

// VerificationDocument is an uploaded proof reviewed by an admin.
// DiplomaType and Year are only set on professional diplomas.
type VerificationDocument struct {
	Type        DocumentType `json:"type"`
	URL         string       `json:"url"`
	UploadedAt  string       `json:"uploadedAt"`
	Verified    bool         `json:"verified"`
	DiplomaType string       `json:"diplomaType,omitempty"`
	Year        int          `json:"year,omitempty"`
}

// Bakery is an employer account.
//
// Password is stored and compared in plain text. This is demo data only and
// must never be carried over to a real account store.
type Bakery struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	Address     string `json:"address"`
	City        string `json:"city"`
	PostalCode  string `json:"postalCode"`
	Avatar      string `json:"avatar,omitempty"`
	Description string `json:"description,omitempty"`
	CreatedAt   string `json:"createdAt"`

	Siret                 string                 `json:"siret,omitempty"`
	Siren                 string                 `json:"siren,omitempty"`
	TVANumber             string                 `json:"tvaNumber,omitempty"`
	Phone                 string                 `json:"phone,omitempty"`
	ManagerName           string                 `json:"managerName,omitempty"`
	ManagerEmail          string                 `json:"managerEmail,omitempty"`
	VerificationStatus    VerificationStatus     `json:"verificationStatus,omitempty"`
	VerificationDocuments []VerificationDocument `json:"verificationDocuments,omitempty"`
	Notes                 string                 `json:"notes,omitempty"`
	SuspendedUntil        string                 `json:"suspendedUntil,omitempty"`
}

// FullAddress formats the address the way missions denormalize it.
func (b Bakery) FullAddress() string {
	if b.PostalCode == "" && b.City == "" {
		return b.Address
	}
	return b.Address + ", " + b.PostalCode + " " + b.City
}
