package constant

// PurchaseStatus values are stored as-is in the purchases table.
type PurchaseStatus string

const (
	PurchaseStatusPending              PurchaseStatus = "pending"
	PurchaseStatusAwaitingProof        PurchaseStatus = "awaiting_proof"
	PurchaseStatusAwaitingConfirmation PurchaseStatus = "awaiting_confirmation"
	PurchaseStatusPaid                 PurchaseStatus = "paid"
	PurchaseStatusRejected             PurchaseStatus = "rejected"
)

type PaymentType string

const (
	PaymentTypeFull    PaymentType = "full"
	PaymentTypeMonthly PaymentType = "monthly"
	PaymentTypeSingle  PaymentType = "single"
)

type ProofKind string

const (
	ProofKindPhoto    ProofKind = "photo"
	ProofKindDocument ProofKind = "document"
	ProofKindLink     ProofKind = "link"
)

type CourseType string

const (
	CourseTypeCourse CourseType = "course"
	CourseTypeBook   CourseType = "book"
	CourseTypeVideo  CourseType = "video"
)

type StudentType string

const (
	StudentTypeNew             StudentType = "new"
	StudentTypeCompletedBefore StudentType = "completed_before"
)

type CompletionStatus string

const (
	CompletionStatusPending  CompletionStatus = "pending"
	CompletionStatusApproved CompletionStatus = "approved"
	CompletionStatusRejected CompletionStatus = "rejected"
)

// SuperAdminID is the seed operator account that can never be deleted.
const SuperAdminID uint64 = 1
