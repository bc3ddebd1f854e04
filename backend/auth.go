// /home/krylon/go/src/github.com/blicero/ariadne/backend/auth.go
// -*- mode: go; coding: utf-8; -*-
// Created on 14. 05. 2023 by Benjamin Walkenhorst
// (c) 2023 Benjamin Walkenhorst
// Time-stamp: <2023-06-04 19:02:11 krylon>

package backend

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blicero/ariadne/common"
	"github.com/blicero/ariadne/objects"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"
)

const tokenLifetime = time.Hour * 24

// The signing key is generated at startup, so tokens do not survive a
// restart of the backend. Clients are expected to log in again when
// their token stops working.
var jwtKey []byte

func init() {
	jwtKey = make([]byte, 32)
	if _, err := rand.Read(jwtKey); err != nil {
		panic(err)
	}
}

var errNoToken = errors.New("no valid bearer token")

func issueToken(u *objects.User) (string, error) {
	var token = jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   u.ID,
		"email": u.Email,
		"iss":   common.AppName,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(tokenLifetime).Unix(),
	})

	return token.SignedString(jwtKey)
} // func issueToken(u *objects.User) (string, error)

// checkToken extracts and validates the bearer token of a request,
// returning the user ID it was issued to.
func checkToken(r *http.Request) (string, error) {
	var header = r.Header.Get("Authorization")

	if !strings.HasPrefix(header, "Bearer ") {
		return "", errNoToken
	}

	var raw = strings.TrimPrefix(header, "Bearer ")

	var token, err = jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v",
				t.Header["alg"])
		}
		return jwtKey, nil
	})

	if err != nil {
		return "", err
	} else if !token.Valid {
		return "", errNoToken
	}

	var sub string
	if sub, err = token.Claims.GetSubject(); err != nil || sub == "" {
		return "", errNoToken
	}

	return sub, nil
} // func checkToken(r *http.Request) (string, error)

func hashPassword(plain string) (string, error) {
	var hash, err = bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(hash), nil
} // func hashPassword(plain string) (string, error)

func checkPassword(hash, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
} // func checkPassword(hash, plain string) bool
