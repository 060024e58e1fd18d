package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jaehyuk-choi/portfolio-auth/internal/common"
	"github.com/jaehyuk-choi/portfolio-auth/internal/server/services"
)

type registerRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
}

type loginRequest struct {
	UserID   string `json:"userId"`
	Password string `json:"password"`
}

type authResponse struct {
	Success bool                `json:"success"`
	Message string              `json:"message"`
	Token   string              `json:"token"`
	User    services.PublicUser `json:"user"`
}

func (s *Server) handleRegister(c *gin.Context) {
	var req registerRequest
	// A body that fails to bind carries no usable fields; report it the same
	// way as empty input.
	_ = c.ShouldBindJSON(&req)

	result, err := s.users.Register(c.Request.Context(), services.RegisterRequest{
		UserID:   req.UserID,
		Password: req.Password,
		Name:     req.Name,
		Phone:    req.Phone,
	})
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user registered", "user_id", result.User.ID)
	c.JSON(http.StatusCreated, authResponse{
		Success: true,
		Message: "회원가입이 완료되었습니다.",
		Token:   result.Token,
		User:    result.User,
	})
}

func (s *Server) handleLogin(c *gin.Context) {
	var req loginRequest
	_ = c.ShouldBindJSON(&req)

	result, err := s.users.Login(c.Request.Context(), req.UserID, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.logger.Info(c.Request.Context(), "user logged in", "user_id", result.User.ID)
	c.JSON(http.StatusOK, authResponse{
		Success: true,
		Message: "로그인이 완료되었습니다.",
		Token:   result.Token,
		User:    result.User,
	})
}

func (s *Server) handleProfile(c *gin.Context) {
	userID := c.GetString(contextUserIDKey)

	view, err := s.users.Profile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			failJSON(c, http.StatusUnauthorized, "사용자를 찾을 수 없습니다.")
			return
		}
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    view,
	})
}

// writeError is the single translator from the service error taxonomy to
// transport status codes and user-facing messages. Internal detail never
// reaches the client; it is logged where the error originates.
func (s *Server) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, common.ErrMissingFields):
		if c.FullPath() == "/auth/login" {
			failJSON(c, http.StatusBadRequest, "아이디와 비밀번호를 입력해주세요.")
		} else {
			failJSON(c, http.StatusBadRequest, "모든 필드를 입력해주세요.")
		}
	case errors.Is(err, common.ErrPasswordTooShort):
		failJSON(c, http.StatusBadRequest, "비밀번호는 6자 이상이어야 합니다.")
	case errors.Is(err, common.ErrPhoneNotAllowed):
		failJSON(c, http.StatusBadRequest, "연락처는 숫자와 하이픈만 입력 가능합니다.")
	case errors.Is(err, common.ErrPhoneLength):
		failJSON(c, http.StatusBadRequest, "올바른 연락처 형식을 입력해주세요. (예: 010-1234-5678)")
	case errors.Is(err, common.ErrDuplicateLogin):
		failJSON(c, http.StatusBadRequest, "이미 존재하는 아이디입니다.")
	case errors.Is(err, common.ErrInvalidCredentials):
		failJSON(c, http.StatusUnauthorized, "아이디 또는 비밀번호가 잘못되었습니다.")
	default:
		if c.FullPath() == "/auth/register" {
			failJSON(c, http.StatusInternalServerError, "회원가입 중 오류가 발생했습니다.")
		} else {
			failJSON(c, http.StatusInternalServerError, "서버 오류가 발생했습니다.")
		}
	}
}

func failJSON(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}
