package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"matchapp/model"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func registerRouter() (*gin.Engine, *fakeUserStore) {
	gin.SetMode(gin.TestMode)
	users := &fakeUserStore{users: map[string]*model.User{}}
	router := gin.New()
	RegisterController(router, users)
	return router, users
}

func postRegister(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/user/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestRegisterCreatesInactiveCustomer(t *testing.T) {
	router, users := registerRouter()

	recorder := postRegister(router, `{
		"username": "somchai",
		"email": "somchai@example.com",
		"password": "secret123",
		"phoneNumber": "081-234-5678"
	}`)
	require.Equal(t, http.StatusCreated, recorder.Code)

	var response struct {
		UserID string `json:"userId"`
	}
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotEmpty(t, response.UserID)

	user, err := users.GetByID(context.Background(), response.UserID)
	require.NoError(t, err)
	assert.Equal(t, model.RoleCustomer, user.Role)
	assert.Equal(t, model.AccountInactive, user.AccountStatus)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("secret123")))
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterRejectsBadInput(t *testing.T) {
	router, _ := registerRouter()

	cases := []struct {
		name string
		body string
		want string
	}{
		{
			name: "missing fields",
			body: `{"email":"a@b.co"}`,
			want: "All Field Required",
		},
		{
			name: "bad email",
			body: `{"username":"x","email":"not-an-email","password":"secret123","phoneNumber":"0812345678"}`,
			want: "invalid email format",
		},
		{
			name: "bad phone",
			body: `{"username":"x","email":"a@b.co","password":"secret123","phoneNumber":"12ab"}`,
			want: "invalid phone number format",
		},
		{
			name: "short password",
			body: `{"username":"x","email":"a@b.co","password":"abc","phoneNumber":"0812345678"}`,
			want: "at least 6 characters",
		},
		{
			name: "bogus role",
			body: `{"username":"x","email":"a@b.co","password":"secret123","phoneNumber":"0812345678","role":"root"}`,
			want: "Invalid role",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			recorder := postRegister(router, tc.body)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tc.want)
		})
	}
}

func TestRegisterDuplicateEmailAndPhone(t *testing.T) {
	router, _ := registerRouter()

	first := postRegister(router, `{"username":"somchai","email":"somchai@example.com","password":"secret123","phoneNumber":"0812345678"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	dupEmail := postRegister(router, `{"username":"other","email":"somchai@example.com","password":"secret123","phoneNumber":"0899999999"}`)
	assert.Equal(t, http.StatusBadRequest, dupEmail.Code)
	assert.Contains(t, dupEmail.Body.String(), "Email Already Exist.")

	dupPhone := postRegister(router, `{"username":"other","email":"other@example.com","password":"secret123","phoneNumber":"0812345678"}`)
	assert.Equal(t, http.StatusBadRequest, dupPhone.Code)
	assert.Contains(t, dupPhone.Body.String(), "Phone Number is Already Exist.")
}
