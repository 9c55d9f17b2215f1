// Package handler chứa các handler xử lý request HTTP của gateway
package handler

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/gofiber/fiber/v3"

	"msa_center/core/common"
	"msa_center/core/global"
	"msa_center/core/logger"
	"msa_center/core/utility"
)

// BaseHandler chứa các helper dùng chung cho mọi handler
type BaseHandler struct{}

// ParseRequestBody parse và validate dữ liệu từ request body
// Sử dụng json.Decoder với UseNumber() để xử lý chính xác các số lớn
func (h *BaseHandler) ParseRequestBody(c fiber.Ctx, input interface{}) error {
	body := c.Body()
	reader := bytes.NewReader(body)
	decoder := json.NewDecoder(reader)
	decoder.UseNumber()
	if err := decoder.Decode(input); err != nil {
		return common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidFormat, common.StatusBadRequest, err.Error())
	}

	if err := global.Validate.Struct(input); err != nil {
		return common.NewError(common.ErrCodeValidationInput, common.MsgValidationError, common.StatusBadRequest, err.Error())
	}

	return nil
}

// HandleResponse ghi response envelope thống nhất xuống client
// Envelope build bởi utility.FinalResponse; HTTP status lấy từ *common.Error,
// lỗi không phân loại được thành 500 và được log
func (h *BaseHandler) HandleResponse(c fiber.Ctx, data interface{}, err error) error {
	if err != nil {
		status := common.StatusInternalServerError
		var customErr *common.Error
		if errors.As(err, &customErr) {
			status = customErr.StatusCode
		} else {
			logger.GetErrorLogger().WithError(err).WithContext(c.Context()).Error("Unhandled error trong handler")
		}
		return c.Status(status).JSON(utility.FinalResponse(nil, err))
	}

	return c.Status(common.StatusOK).JSON(utility.FinalResponse(data, nil))
}
