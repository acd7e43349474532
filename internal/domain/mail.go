package domain

type MailMessage struct {
	Type string `json:"type"`
	To   string `json:"to"`
	Data any    `json:"data"`
}

type CreateStaffMailData struct {
	FullName string `json:"fullName"`
	Username string `json:"username"`
	Password string `json:"password"`
}

type ResetPasswordMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type ChangeEmailMailData struct {
	FullName   string `json:"fullName"`
	OTP        string `json:"otp"`
	Expiration int    `json:"expiration"`
}

type RosterNoticeMailData struct {
	FullName  string   `json:"fullName"`
	ShiftName string   `json:"shiftName"`
	Dates     []string `json:"dates"`
	Note      string   `json:"note"`
	Action    string   `json:"action"` // 已排班 / 已取消
}
