package validator

import (
	"encoding/base32"
	"encoding/binary"
	"hash/crc32"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

const maxPrincipalBytes = 29

var principalEncoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// IsValidPrincipal checks the textual form of a principal: lowercase base32 of
// crc32(bytes) || bytes, grouped by 5 chars with dashes
func IsValidPrincipal(text string) bool {
	if text == "" || text != strings.ToLower(text) {
		return false
	}
	raw, err := principalEncoding.DecodeString(strings.ToUpper(strings.ReplaceAll(text, "-", "")))
	if err != nil || len(raw) < 4 || len(raw)-4 > maxPrincipalBytes {
		return false
	}
	if binary.BigEndian.Uint32(raw[:4]) != crc32.ChecksumIEEE(raw[4:]) {
		return false
	}
	return text == group(strings.ToLower(principalEncoding.EncodeToString(raw)))
}

func group(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && i%5 == 0 {
			b.WriteByte('-')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// New returns a validator with the `principal` tag registered
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("principal", func(fl validator.FieldLevel) bool {
		return IsValidPrincipal(fl.Field().String())
	})
	return v
}

func NewCustomValidator(v *validator.Validate) echo.Validator {
	return &CustomValidator{v}
}

type CustomValidator struct {
	validator *validator.Validate
}

func (v *CustomValidator) Validate(i interface{}) error {
	if err := v.validator.Struct(i); err != nil {
		return err
	}
	return nil
}
