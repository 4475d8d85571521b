package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"repostapi/internal/model"
	"repostapi/internal/service"
)

// createRepostRequest is the body of POST /threads/:thread_id/reposts.
type createRepostRequest struct {
	AccountID int64 `json:"account_id" validate:"required,gt=0"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

func threadIDParam(c *fiber.Ctx) (model.ThreadID, bool) {
	id, err := model.ParseThreadID(c.Params("thread_id"))
	return id, err == nil && id > 0
}

// ListReposts returns every repost of a thread.
//
// @Summary  List reposts of a thread
// @Tags     reposts
// @Produce  json
// @Param    thread_id path int true "Thread ID"
// @Success  200 {object} service.RepostListResult
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /threads/{thread_id}/reposts [get]
func ListReposts(svc service.RepostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threadID, ok := threadIDParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_THREAD_ID", "invalid thread id")
		}

		res, err := svc.List(c.UserContext(), threadID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// CreateRepost records a repost of a thread by an account.
//
// @Summary  Repost a thread
// @Tags     reposts
// @Accept   json
// @Produce  json
// @Param    thread_id path int                 true "Thread ID"
// @Param    body      body createRepostRequest true "Reposting account"
// @Success  201 {object} service.RepostResult
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /threads/{thread_id}/reposts [post]
func CreateRepost(svc service.RepostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threadID, ok := threadIDParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_THREAD_ID", "invalid thread id")
		}

		var req createRepostRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "BAD_REQUEST", "invalid request body")
		}
		if err := validate.Struct(req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ACCOUNT_ID", "invalid account id")
		}

		res, err := svc.Repost(c.UserContext(), threadID, model.AccountID(req.AccountID))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.Status(fiber.StatusCreated).JSON(res)
	}
}

// DeleteRepost removes an account's reposts of a thread.
// Removing a repost that does not exist is not an error.
//
// @Summary  Undo a repost
// @Tags     reposts
// @Produce  json
// @Param    thread_id  path int true "Thread ID"
// @Param    account_id path int true "Account ID"
// @Success  200 {object} service.RepostResult
// @Failure  400 {object} errorPayload
// @Failure  500 {object} errorPayload
// @Router   /threads/{thread_id}/reposts/{account_id} [delete]
func DeleteRepost(svc service.RepostService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		threadID, ok := threadIDParam(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_THREAD_ID", "invalid thread id")
		}
		accountID, err := model.ParseAccountID(c.Params("account_id"))
		if err != nil || accountID <= 0 {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ACCOUNT_ID", "invalid account id")
		}

		res, err := svc.Unrepost(c.UserContext(), threadID, accountID)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
