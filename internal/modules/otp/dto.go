package otp

type SendRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	CountryCode string `json:"country_code"`
}

type VerifyRequest struct {
	PhoneNumber string `json:"phone_number" binding:"required"`
	OTPCode     string `json:"otp_code" binding:"required"`
}
