package jwt

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/xiebiao/library/pkg/errors"
)

// TestManager_GenerateAndParse 测试Token生成与解析
func TestManager_GenerateAndParse(t *testing.T) {
	m := NewManager("test-secret-32-bytes-long-string", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(1, "admin", "ADMIN")
	if err != nil {
		t.Fatalf("期望生成成功，实际失败: %v", err)
	}

	claims, err := m.ParseToken(pair.AccessToken)
	if err != nil {
		t.Fatalf("期望解析成功，实际失败: %v", err)
	}

	if claims.UserID != 1 {
		t.Errorf("期望UserID为1，实际%d", claims.UserID)
	}
	if claims.Username != "admin" {
		t.Errorf("期望Username为admin，实际%s", claims.Username)
	}
	if claims.Role != "ADMIN" {
		t.Errorf("期望Role为ADMIN，实际%s", claims.Role)
	}
}

// TestManager_ParseExpiredToken 测试过期Token
func TestManager_ParseExpiredToken(t *testing.T) {
	m := NewManager("test-secret-32-bytes-long-string", -time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(2, "student", "STUDENT")
	if err != nil {
		t.Fatalf("期望生成成功，实际失败: %v", err)
	}

	_, err = m.ParseToken(pair.AccessToken)
	if !errors.Is(err, apperrors.ErrTokenExpired) {
		t.Errorf("期望ErrTokenExpired，实际%v", err)
	}
}

// TestManager_ParseTamperedToken 测试签名被篡改的Token
func TestManager_ParseTamperedToken(t *testing.T) {
	m := NewManager("test-secret-32-bytes-long-string", 2*time.Hour, 7*24*time.Hour)
	other := NewManager("another-secret-32-bytes-long-str", 2*time.Hour, 7*24*time.Hour)

	pair, err := other.GenerateToken(3, "eve", "STUDENT")
	if err != nil {
		t.Fatalf("期望生成成功，实际失败: %v", err)
	}

	_, err = m.ParseToken(pair.AccessToken)
	if !errors.Is(err, apperrors.ErrInvalidToken) {
		t.Errorf("期望ErrInvalidToken，实际%v", err)
	}
}

// TestManager_RefreshAccessToken 测试刷新Access Token
func TestManager_RefreshAccessToken(t *testing.T) {
	m := NewManager("test-secret-32-bytes-long-string", 2*time.Hour, 7*24*time.Hour)

	pair, err := m.GenerateToken(4, "admin", "ADMIN")
	if err != nil {
		t.Fatalf("期望生成成功，实际失败: %v", err)
	}

	newToken, err := m.RefreshAccessToken(pair.RefreshToken)
	if err != nil {
		t.Fatalf("期望刷新成功，实际失败: %v", err)
	}

	claims, err := m.ParseToken(newToken)
	if err != nil {
		t.Fatalf("期望解析成功，实际失败: %v", err)
	}
	if claims.UserID != 4 {
		t.Errorf("期望UserID为4，实际%d", claims.UserID)
	}
}
