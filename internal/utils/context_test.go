// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"context"
	"testing"
)

func TestContextKeyString(t *testing.T) {
	key := contextKey("testKey")
	if key.String() != "testKey" {
		t.Errorf("expected 'testKey', got '%s'", key.String())
	}
}

func TestUserGUIDCtxKey(t *testing.T) {
	if UserGUIDCtxKey.String() != "userGUID" {
		t.Errorf("expected 'userGUID', got '%s'", UserGUIDCtxKey.String())
	}
}

func TestGetUserGUIDFromContext_Success(t *testing.T) {
	ctx := WithUserGUID(context.Background(), "guid-42")

	guid, ok := GetUserGUIDFromContext(ctx)

	if !ok {
		t.Fatal("expected ok=true, got false")
	}
	if guid != "guid-42" {
		t.Errorf("expected guid-42, got %s", guid)
	}
}

func TestGetUserGUIDFromContext_Missing(t *testing.T) {
	_, ok := GetUserGUIDFromContext(context.Background())
	if ok {
		t.Error("expected ok=false for empty context")
	}
}

func TestGetUserGUIDFromContext_WrongType(t *testing.T) {
	ctx := context.WithValue(context.Background(), UserGUIDCtxKey, 42)

	_, ok := GetUserGUIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for non-string value")
	}
}

func TestGetUserGUIDFromContext_Empty(t *testing.T) {
	ctx := WithUserGUID(context.Background(), "")

	_, ok := GetUserGUIDFromContext(ctx)
	if ok {
		t.Error("expected ok=false for empty guid")
	}
}
