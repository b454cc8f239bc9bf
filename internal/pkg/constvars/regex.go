package constvars

const (
	RegexInternationalPhoneNumber = `^\+?[1-9]\d{6,14}$`
	RegexNumericOTP               = `^\d{4,8}$`
)
