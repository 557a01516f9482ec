package delivery

import (
	"errors"
	"net/http"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/planbmusic/internal/domain"
	"github.com/Vovarama1992/planbmusic/internal/ports"
)

type AuthHandler struct {
	auth ports.AuthService
	log  *logger.ZapLogger
}

func NewAuthHandler(auth ports.AuthService, log *logger.ZapLogger) *AuthHandler {
	return &AuthHandler{
		auth: auth,
		log:  log,
	}
}

// POST /admin/login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, "login failed", err)
		return
	}
	if strings.TrimSpace(req.Username) == "" || req.Password == "" {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "username and password are required",
		})
		return
	}

	sess, err := h.auth.Login(r.Context(), req.Username, req.Password)
	if errors.Is(err, domain.ErrUnauthorized) {
		writeJSON(w, http.StatusUnauthorized, map[string]any{
			"success": false,
			"error":   "아이디 또는 비밀번호가 올바르지 않습니다.",
		})
		return
	}
	if err != nil {
		writeError(w, r, h.log, "login failed", err)
		return
	}

	h.log.Log(logger.LogEntry{
		Level:   "info",
		Message: "login success",
		Fields:  map[string]any{"username": sess.Username},
	})

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"token":   sess.Token,
		"message": "로그인 성공",
	})
}

type tokenRequest struct {
	Token string `json:"token"`
}

// POST /admin/verify
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusUnauthorized, map[string]any{"valid": false})
		return
	}

	sess, err := h.auth.Verify(r.Context(), req.Token)
	switch {
	case errors.Is(err, domain.ErrSessionExpired):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"valid": false, "error": "세션이 만료되었습니다."})
		return
	case errors.Is(err, domain.ErrSessionInvalid):
		writeJSON(w, http.StatusUnauthorized, map[string]any{"valid": false})
		return
	case err != nil:
		h.log.Log(logger.LogEntry{
			Level:   "error",
			Message: "verify session failed",
			Error:   err,
		})
		writeJSON(w, http.StatusInternalServerError, map[string]any{"valid": false})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"valid":    true,
		"username": sess.Username,
	})
}

// POST /admin/logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, "logout failed", err)
		return
	}
	if err := h.auth.Logout(r.Context(), req.Token); err != nil {
		writeError(w, r, h.log, "logout failed", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}
