package utility

import (
	"call_center_api/internal/common"

	"github.com/dgrijalva/jwt-go"
)

// JwtClaims chứa data được mã hóa trong JWT token.
type JwtClaims struct {
	UserID       string `json:"userId"`
	Time         string `json:"time"`
	RandomNumber string `json:"randomNumber"`
	jwt.StandardClaims
}

// CreateToken tạo JWT token từ userID với secret của server.
// time và randomNumber làm cho token của mỗi lần đăng nhập là duy nhất.
// @returns - map {"token": <jwt>} và lỗi nếu có
func CreateToken(secret string, userID string, time string, randomNumber string) (map[string]string, error) {
	claims := &JwtClaims{
		UserID:       userID,
		Time:         time,
		RandomNumber: randomNumber,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return nil, common.NewError(common.ErrCodeAuthToken, "Không thể tạo token", common.StatusInternalServerError, err)
	}

	return map[string]string{"token": signed}, nil
}

// ParseToken giải mã và xác thực JWT token, trả về claims.
func ParseToken(secret string, tokenString string) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, common.ErrTokenInvalid
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, common.ErrTokenInvalid
	}
	return claims, nil
}
