package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"webtoon-chat-go/internal/model"
	"webtoon-chat-go/internal/repository"
)

func TestGetOrCreate_Idempotent(t *testing.T) {
	db := newTestDB(t)
	ch := seedCharacter(t, db)
	user := &model.User{Nickname: "미나"}
	require.NoError(t, repository.NewUserRepository(db).Create(user))

	svc := NewRoomService(repository.NewRoomRepository(db), repository.NewMessageRepository(db))

	first, err := svc.GetOrCreate(user.ID, ch.ID)
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	// 同一配对再次创建必须返回同一个房间
	second, err := svc.GetOrCreate(user.ID, ch.ID)
	require.NoError(t, err)
	require.Equal(t, first.ID, second.ID)

	// 不同配对得到新房间
	other := &model.User{Nickname: "수진"}
	require.NoError(t, repository.NewUserRepository(db).Create(other))
	third, err := svc.GetOrCreate(other.ID, ch.ID)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, third.ID)
}

func TestSignup_DefaultWebtoonLevel(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(repository.NewUserRepository(db))

	user := &model.User{Nickname: "미나"}
	require.NoError(t, svc.Signup(user))
	require.Equal(t, 1, user.WebtoonLevel)

	leveled := &model.User{Nickname: "수진", WebtoonLevel: 7}
	require.NoError(t, svc.Signup(leveled))
	require.Equal(t, 7, leveled.WebtoonLevel)
}
