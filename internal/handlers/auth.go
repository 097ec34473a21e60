package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GoldeNerd2/Aicord/internal/jwt"
	"github.com/GoldeNerd2/Aicord/internal/validator"
	playground "github.com/go-playground/validator/v10"
)

func Login(w http.ResponseWriter, r *http.Request) {
	type LoginRequest struct {
		Identifier string `json:"identifier"`
		Password   string `json:"password"`
	}

	var login LoginRequest
	err := json.NewDecoder(r.Body).Decode(&login)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	user, err := appStore.Login(login.Identifier, login.Password)
	if err != nil {
		sugar.Debug(err)
		storeError(w, err)
		return
	}

	cookie, err := jwt.CreateToken(r.URL.Query().Get("rememberMe") == "true", user.ID)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &cookie)

	user.Password = nil
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func Register(w http.ResponseWriter, r *http.Request) {
	var registerErrors = make(map[string]string)

	type Registration struct {
		Email           string `json:"email" validate:"required"`
		Username        string `json:"username" validate:"required"`
		Password        string `json:"password" validate:"eqfield=ConfirmPassword"`
		ConfirmPassword string `json:"confirmPassword"`
	}

	var registration Registration
	err := json.NewDecoder(r.Body).Decode(&registration)
	if err != nil {
		sugar.Debug(err)
		http.Error(w, "", http.StatusBadRequest)
		return
	}

	err = validate.Struct(registration)
	if err != nil {
		var validateErrs playground.ValidationErrors
		if errors.As(err, &validateErrs) {
			for _, e := range validateErrs {
				registerErrors[e.Field()] = e.Tag()
			}
		} else {
			sugar.Error(err)
			http.Error(w, "", http.StatusInternalServerError)
			return
		}
	}

	if err := validator.Email(registration.Email); err != nil {
		registerErrors["Email"] = err.Error()
	}
	if err := validator.Username(registration.Username); err != nil {
		registerErrors["Username"] = err.Error()
	}
	if err := validator.Password(registration.Password); err != nil {
		registerErrors["Password"] = err.Error()
	}

	if len(registerErrors) != 0 {
		// sends back 400 with the form field errors
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(registerErrors)
		if encodeErr != nil {
			sugar.Error(encodeErr)
			http.Error(w, "", http.StatusInternalServerError)
		}
		return
	}

	user, err := appStore.Signup(registration.Email, registration.Username, registration.Password)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	cookie, err := jwt.CreateToken(r.URL.Query().Get("rememberMe") == "true", user.ID)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &cookie)

	user.Password = nil
	err = json.NewEncoder(w).Encode(user)
	if err != nil {
		sugar.Error(err)
		http.Error(w, "", http.StatusInternalServerError)
		return
	}
}

func Logout(w http.ResponseWriter, r *http.Request) {
	appStore.Logout()

	deleteJwtCookie := &http.Cookie{
		Name:     "JWT",
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
	}
	http.SetCookie(w, deleteJwtCookie)
}
