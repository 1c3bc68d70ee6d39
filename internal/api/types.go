package api

import "pgctl/internal/session"

// LoginRequest carries admin credentials (email) or tenant credentials
// (phone); the backend picks the flow from whichever field is set.
type LoginRequest struct {
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string           `json:"token"`
	User  session.Identity `json:"user"`
}

// User is a tenant record as the backend returns it. Password is write-only:
// it goes out on create/update and never comes back.
type User struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	RoomNo   string `json:"roomNo"`
	Aadhar   string `json:"aadhar,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password,omitempty"`
}

type UserList struct {
	Total int    `json:"total"`
	Page  int    `json:"page"`
	Limit int    `json:"limit"`
	Users []User `json:"users"`
}

type Payment struct {
	ID            string  `json:"_id"`
	UserID        string  `json:"userId"`
	User          *User   `json:"user,omitempty"`
	Amount        float64 `json:"amount"`
	Mode          string  `json:"mode"`
	PaymentDate   string  `json:"paymentDate"`
	Month         int     `json:"month"`
	Year          int     `json:"year"`
	RentType      string  `json:"rentType"`
	TransactionID string  `json:"transactionId,omitempty"`
	Note          string  `json:"note,omitempty"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

type PaymentList struct {
	Total    int       `json:"total"`
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Payments []Payment `json:"payments"`
}

type PaymentHistory struct {
	Payments []Payment `json:"payments"`
}

// MonthlyReport splits the month into tenants who paid and tenants who
// have not. Both sides are computed by the backend.
type MonthlyReport struct {
	Paid   []Payment `json:"paid"`
	Unpaid []User    `json:"unpaid"`
}

// AdminProfile is the operator account plus its UPI settings.
type AdminProfile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Avatar   string `json:"avatar,omitempty"`
	UpiID    string `json:"upiId,omitempty"`
	UpiQrURL string `json:"upiQrUrl,omitempty"`
}

// UPIInfo is the tenant-visible slice of the admin's UPI profile.
type UPIInfo struct {
	UpiID     string `json:"upiId"`
	UpiQrURL  string `json:"upiQrUrl,omitempty"`
	AdminName string `json:"adminName,omitempty"`
}

type UpdateProfileRequest struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required"`
	Phone    string `json:"phone" validate:"required,len=10,numeric"`
	RoomNo   string `json:"roomNo" validate:"required"`
	Aadhar   string `json:"aadhar,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password" validate:"required,min=6"`
}

// UpdateUserRequest sends only the fields being changed.
type UpdateUserRequest struct {
	Name     string `json:"name,omitempty"`
	Phone    string `json:"phone,omitempty" validate:"omitempty,len=10,numeric"`
	RoomNo   string `json:"roomNo,omitempty"`
	Aadhar   string `json:"aadhar,omitempty"`
	Address  string `json:"address,omitempty"`
	Password string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type CreatePaymentRequest struct {
	UserID        string  `json:"userId" validate:"required"`
	Amount        float64 `json:"amount" validate:"required,gt=0"`
	Mode          string  `json:"mode" validate:"required,oneof=cash online"`
	PaymentDate   string  `json:"paymentDate" validate:"required"`
	Month         int     `json:"month" validate:"required,min=1,max=12"`
	Year          int     `json:"year" validate:"required,min=2000"`
	RentType      string  `json:"rentType" validate:"required,oneof=monthly-rent advance security other"`
	TransactionID string  `json:"transactionId,omitempty"`
	Note          string  `json:"note,omitempty"`
}

type UpdatePaymentRequest struct {
	Amount        float64 `json:"amount,omitempty" validate:"omitempty,gt=0"`
	Mode          string  `json:"mode,omitempty" validate:"omitempty,oneof=cash online"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
	Month         int     `json:"month,omitempty" validate:"omitempty,min=1,max=12"`
	Year          int     `json:"year,omitempty"`
	RentType      string  `json:"rentType,omitempty" validate:"omitempty,oneof=monthly-rent advance security other"`
	TransactionID string  `json:"transactionId,omitempty"`
	Note          string  `json:"note,omitempty"`
}

type ListUsersParams struct {
	Search string
	Page   int
	Limit  int
}

type ListPaymentsParams struct {
	Month int
	Year  int
	Mode  string
	Page  int
	Limit int
}
