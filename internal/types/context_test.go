package types

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithRequestID(t *testing.T) {
	ctx := WithRequestID(context.Background())

	id := GetRequestID(ctx)
	assert.NotEmpty(t, id)
	assert.True(t, strings.HasPrefix(id, SHORT_ID_PREFIX_REQUEST))
	assert.LessOrEqual(t, len(id), 12)
}

func TestWithRequestIDKeepsExistingID(t *testing.T) {
	ctx := context.WithValue(context.Background(), CtxRequestID, "RQ-FIXED")

	ctx = WithRequestID(ctx)
	assert.Equal(t, "RQ-FIXED", GetRequestID(ctx))
}

func TestGetRequestIDEmptyContext(t *testing.T) {
	assert.Empty(t, GetRequestID(context.Background()))
}

func TestGetActorIDFallsBackToSystem(t *testing.T) {
	assert.Equal(t, DefaultActorID, GetActorID(context.Background()))

	ctx := context.WithValue(context.Background(), CtxActorID, "Admin")
	assert.Equal(t, "Admin", GetActorID(ctx))
}
