// Package authsvc - service người dùng (User).
package authsvc

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	authdto "call_center_api/internal/api/auth/dto"
	models "call_center_api/internal/api/auth/models"
	basesvc "call_center_api/internal/api/base/service"
	"call_center_api/internal/common"
	"call_center_api/internal/global"
	"call_center_api/internal/utility"
)

// bcryptCost là cost dùng khi hash mật khẩu người dùng.
const bcryptCost = 12

// UserService là cấu trúc chứa các phương thức liên quan đến người dùng
type UserService struct {
	*basesvc.BaseServiceMongoImpl[models.User]
}

// NewUserService tạo mới UserService
func NewUserService() (*UserService, error) {
	userCollection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Users)
	if !exist {
		return nil, fmt.Errorf("failed to get users collection: %v", common.ErrNotFound)
	}

	return &UserService{
		BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[models.User](userCollection),
	}, nil
}

// Register đăng ký người dùng mới với email và mật khẩu.
// Mật khẩu được hash bằng bcrypt trước khi lưu. Đăng ký thành công sẽ đăng nhập luôn
// (cấp token cho hwid của thiết bị).
func (s *UserService) Register(ctx context.Context, input *authdto.UserRegisterInput) (*models.User, error) {
	// Kiểm tra email đã tồn tại chưa
	exists, err := s.DocumentExists(ctx, bson.M{"email": input.Email})
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, common.NewError(common.ErrCodeAuthCredentials, "Email đã được sử dụng", common.StatusConflict, nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcryptCost)
	if err != nil {
		return nil, common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hash),
		Tokens:   []models.Token{},
	}

	created, err := s.InsertOne(ctx, user)
	if err != nil {
		return nil, err
	}

	// Cấp token cho thiết bị đăng ký
	loggedIn, err := s.issueToken(ctx, &created, input.Hwid)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": loggedIn.ID.Hex(), "email": loggedIn.Email}).Info("Register: Đăng ký thành công")
	return loggedIn, nil
}

// Login đăng nhập bằng email và mật khẩu, trả về user kèm token mới cho hwid.
func (s *UserService) Login(ctx context.Context, input *authdto.UserLoginInput) (*models.User, error) {
	user, err := s.FindOne(ctx, bson.M{"email": input.Email}, nil)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		return nil, common.ErrInvalidCredentials
	}

	if user.IsBlock {
		return nil, common.NewError(common.ErrCodeAuth, "Tài khoản đã bị khóa: "+user.BlockNote, common.StatusForbidden, nil)
	}

	loggedIn, err := s.issueToken(ctx, &user, input.Hwid)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{"user_id": loggedIn.ID.Hex(), "email": loggedIn.Email}).Info("Login: Đăng nhập thành công")
	return loggedIn, nil
}

// issueToken tạo JWT token mới cho hwid và cập nhật vào user.
// time và randomNumber làm cho token của mỗi lần đăng nhập là duy nhất.
func (s *UserService) issueToken(ctx context.Context, user *models.User, hwid string) (*models.User, error) {
	rdNumber := rand.Intn(100)
	currentTime := time.Now().Unix()
	tokenMap, err := utility.CreateToken(global.MongoDB_ServerConfig.JwtSecret, user.ID.Hex(), strconv.FormatInt(currentTime, 16), strconv.Itoa(rdNumber))
	if err != nil {
		return nil, err
	}

	user.Token = tokenMap["token"]
	idTokenExist := -1
	for i, t := range user.Tokens {
		if t.Hwid == hwid {
			idTokenExist = i
			break
		}
	}
	if idTokenExist == -1 {
		user.Tokens = append(user.Tokens, models.Token{Hwid: hwid, JwtToken: tokenMap["token"]})
	} else {
		user.Tokens[idTokenExist].JwtToken = tokenMap["token"]
	}

	updateData := &basesvc.UpdateData{
		Set: map[string]interface{}{
			"token":  user.Token,
			"tokens": user.Tokens,
		},
	}
	updated, err := s.UpdateById(ctx, user.ID, updateData)
	if err != nil {
		logrus.WithFields(logrus.Fields{"user_id": user.ID.Hex(), "error": err.Error()}).Error("issueToken: Lỗi khi cập nhật token vào user")
		return nil, err
	}
	return &updated, nil
}

// Logout đăng xuất người dùng (xóa token theo hwid)
func (s *UserService) Logout(ctx context.Context, userID primitive.ObjectID, input *authdto.UserLogoutInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}
	newTokens := make([]models.Token, 0)
	for _, t := range user.Tokens {
		if t.Hwid != input.Hwid {
			newTokens = append(newTokens, t)
		}
	}
	_, err = s.UpdateById(ctx, userID, logoutUpdate(newTokens))
	return err
}

// logoutUpdate giữ lại token của các thiết bị khác và thu hồi token đang hoạt động.
// Token bị thu hồi dùng $unset thay vì set chuỗi rỗng: document không bao giờ
// được chứa token rỗng để lookup bằng bearer token rỗng không thể match.
func logoutUpdate(remaining []models.Token) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Set:   map[string]interface{}{"tokens": remaining},
		Unset: map[string]interface{}{"token": ""},
	}
}

// ChangePassword đổi mật khẩu người dùng sau khi xác thực mật khẩu cũ.
// Đổi mật khẩu sẽ thu hồi toàn bộ token đã cấp.
func (s *UserService) ChangePassword(ctx context.Context, userID primitive.ObjectID, input *authdto.UserChangePasswordInput) error {
	user, err := s.FindOneById(ctx, userID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.OldPassword)); err != nil {
		return common.ErrInvalidCredentials
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcryptCost)
	if err != nil {
		return common.NewError(common.ErrCodeInternalServer, "Không thể hash mật khẩu", common.StatusInternalServerError, err)
	}

	_, err = s.UpdateById(ctx, userID, passwordChangeUpdate(string(hash)))
	return err
}

// passwordChangeUpdate đặt mật khẩu mới và thu hồi toàn bộ token đã cấp.
func passwordChangeUpdate(passwordHash string) *basesvc.UpdateData {
	return &basesvc.UpdateData{
		Set: map[string]interface{}{
			"password": passwordHash,
			"tokens":   []models.Token{},
		},
		Unset: map[string]interface{}{"token": ""},
	}
}
