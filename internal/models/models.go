package models

type Member struct {
	Id          int64   `json:"id"`
	FirebaseUid *string `json:"firebaseUid"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	PhotoUrl    *string `json:"photoUrl"`
	Role        string  `json:"role"`
	Team        string  `json:"team"`
	Location    string  `json:"location"`
	JoinDate    string  `json:"joinDate"`
	Status      string  `json:"status"`
}

type Book struct {
	Id          int64  `json:"id"`
	Olid        string `json:"olid"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Published   string `json:"published"`
	ImageUrl    string `json:"imageUrl"`
	Pages       string `json:"pages"`
	Isbn        string `json:"isbn"`
}

type ReportAnswer struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

type BookReport struct {
	Id       int64          `json:"id"`
	BookId   int64          `json:"bookId"`
	MemberId int64          `json:"memberId"`
	Answers  []ReportAnswer `json:"answers"`
}

type HandleFirebaseLoginRequest struct {
	IdToken string `json:"idToken" validate:"required"`
}

type HandleCreateMemberRequest struct {
	Name     string  `json:"name" validate:"required"`
	Role     string  `json:"role"`
	Team     string  `json:"team"`
	Email    string  `json:"email"`
	Location string  `json:"location"`
	JoinDate string  `json:"joinDate"`
	PhotoUrl *string `json:"photoUrl"`
	Status   string  `json:"status"`
}

type HandleCreateBookRequest struct {
	Olid        string `json:"olid"`
	Title       string `json:"title" validate:"required"`
	Author      string `json:"author"`
	Description string `json:"description"`
	Published   string `json:"published"`
	ImageUrl    string `json:"imageUrl"`
	Pages       string `json:"pages"`
	Isbn        string `json:"isbn"`
}

type HandleCreateResponse struct {
	Id      int64 `json:"id"`
	Changes int64 `json:"changes"`
}

type HandleStartReadingRequest struct {
	BookId    int64 `json:"bookId" validate:"required"`
	MemberUid int64 `json:"memberUid" validate:"required"`
}

type HandleMoveToReadRequest struct {
	BookId   int64 `json:"bookId" validate:"required"`
	MemberId int64 `json:"memberId" validate:"required"`
}

type HandleSubmitReportRequest struct {
	BookId   int64          `json:"bookId" validate:"required"`
	MemberId int64          `json:"memberId" validate:"required"`
	Answers  []ReportAnswer `json:"answers"`
}

type HandleSubmitReportResponse struct {
	Message  string `json:"message"`
	ReportId int64  `json:"reportId"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
