package service

import (
	"context"
	"testing"

	"ReelVibe.com/pkg/errno"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newReplyServiceForTest(store ReplyStore) *ReplyService {
	return &ReplyService{ctx: context.Background(), store: store}
}

func TestAddReply(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newReplyServiceForTest(store)

	reply, err := service.AddReply(context.Background(), &AddReplyRequest{
		CommentId: commentId,
		UserId:    15,
		Content:   "me too",
	})
	require.NoError(t, err)
	assert.NotZero(t, reply.ReplyId)
	assert.Equal(t, commentId, reply.CommentId)

	// 新回复挂在列表末尾
	order := store.replyOrder[commentId]
	require.Len(t, order, 2)
	assert.Equal(t, reply.ReplyId, order[1])
}

func TestAddReplyCommentNotFound(t *testing.T) {
	store := newFakeStore()
	service := newReplyServiceForTest(store)

	_, err := service.AddReply(context.Background(), &AddReplyRequest{
		CommentId: 404, UserId: 15, Content: "me too",
	})
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestEditReplyRejectsWhitespace(t *testing.T) {
	store := newFakeStore()
	commentId, replyId := seedCommentWithReply(store)
	service := newReplyServiceForTest(store)

	err := service.EditReply(context.Background(), commentId, replyId, " \t ")
	require.Error(t, err)
	assert.Equal(t, errno.RequestErr.ErrCode, errno.ConvertErr(err).ErrCode)
	assert.Equal(t, "first reply", store.replies[replyId].Content)
}

func TestEditReplyTouchesOnlyTarget(t *testing.T) {
	store := newFakeStore()
	commentId, replyId := seedCommentWithReply(store)
	other, err := newReplyServiceForTest(store).AddReply(context.Background(), &AddReplyRequest{
		CommentId: commentId, UserId: 16, Content: "second",
	})
	require.NoError(t, err)

	service := newReplyServiceForTest(store)
	require.NoError(t, service.EditReply(context.Background(), commentId, replyId, "edited"))

	assert.Equal(t, "edited", store.replies[replyId].Content)
	assert.Equal(t, "second", store.replies[other.ReplyId].Content)
	assert.Equal(t, other.UpdatedAt, store.replies[other.ReplyId].UpdatedAt, "other replies keep their timestamps")
}

func TestEditReplyWrongComment(t *testing.T) {
	store := newFakeStore()
	_, replyId := seedCommentWithReply(store)
	service := newReplyServiceForTest(store)

	// 用错误的commentId定位同一个reply
	err := service.EditReply(context.Background(), 777, replyId, "edited")
	require.Error(t, err)
	assert.Equal(t, errno.NotFoundErr.ErrCode, errno.ConvertErr(err).ErrCode)
}

func TestListReplyInsertionOrder(t *testing.T) {
	store := newFakeStore()
	commentId, _ := seedCommentWithReply(store)
	service := newReplyServiceForTest(store)
	ctx := context.Background()

	for _, content := range []string{"second", "third"} {
		_, err := service.AddReply(ctx, &AddReplyRequest{
			CommentId: commentId, UserId: 17, Content: content,
		})
		require.NoError(t, err)
	}

	views, err := service.ListReply(ctx, &ListReplyRequest{CommentId: commentId})
	require.NoError(t, err)
	require.Len(t, views, 3)
	assert.Equal(t, "first reply", views[0].Content)
	assert.Equal(t, "second", views[1].Content)
	assert.Equal(t, "third", views[2].Content)
}
