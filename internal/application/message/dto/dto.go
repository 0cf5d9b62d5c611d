package dto

import (
	"sort"

	"github.com/portalkit/portalkit/internal/domain/message"
)

type ErrorMessageDTO struct {
	ErrorCode    string `json:"error_code"`
	ErrorMessage string `json:"error_message"`
}

type ValidationMessageDTO struct {
	ValidationCode    string `json:"validation_code"`
	ValidationMessage string `json:"validation_message"`
}

type InformationMessageDTO struct {
	InformationCode string `json:"information_code"`
	InformationText string `json:"information_text"`
}

type MessagesDTO struct {
	UserError       []ErrorMessageDTO       `json:"user_error"`
	UserValidation  []ValidationMessageDTO  `json:"user_validation"`
	UserInformation []InformationMessageDTO `json:"user_information"`
}

// ToMessagesDTO lists every kind ordered by code.
func ToMessagesDTO(c message.Catalog) *MessagesDTO {
	out := &MessagesDTO{
		UserError:       []ErrorMessageDTO{},
		UserValidation:  []ValidationMessageDTO{},
		UserInformation: []InformationMessageDTO{},
	}
	for _, code := range sortedCodes(c[message.KindError]) {
		out.UserError = append(out.UserError, ErrorMessageDTO{ErrorCode: code, ErrorMessage: c[message.KindError][code]})
	}
	for _, code := range sortedCodes(c[message.KindValidation]) {
		out.UserValidation = append(out.UserValidation, ValidationMessageDTO{ValidationCode: code, ValidationMessage: c[message.KindValidation][code]})
	}
	for _, code := range sortedCodes(c[message.KindInformation]) {
		out.UserInformation = append(out.UserInformation, InformationMessageDTO{InformationCode: code, InformationText: c[message.KindInformation][code]})
	}
	return out
}

func sortedCodes(m map[string]string) []string {
	codes := make([]string, 0, len(m))
	for code := range m {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
