package errors_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/muhammadheryan/inventory-management/constant"
	cerr "github.com/muhammadheryan/inventory-management/utils/errors"
	"github.com/stretchr/testify/assert"
)

func TestCustomError(t *testing.T) {
	err := cerr.SetCustomError(constant.ErrNotFound)
	assert.Equal(t, "data not found", err.Error())
	assert.Equal(t, "0002", err.ErrorCode())
	assert.Equal(t, http.StatusNotFound, err.ErrorHTTPCode())
	assert.True(t, cerr.Is(err, constant.ErrNotFound))
	assert.False(t, cerr.Is(err, constant.ErrInternal))
	assert.False(t, cerr.Is(errors.New("plain"), constant.ErrNotFound))
}

func TestCustomErrorWithMessage(t *testing.T) {
	err := cerr.SetCustomErrorWithMessage(constant.ErrNotFound, "no product matched")
	assert.Equal(t, "no product matched", err.Error())
	assert.Equal(t, constant.ErrNotFound, err.ErrorType())
	assert.Equal(t, http.StatusNotFound, err.ErrorHTTPCode())

	var ce cerr.CustomError
	wrapped := error(err)
	assert.True(t, errors.As(wrapped, &ce))
}
