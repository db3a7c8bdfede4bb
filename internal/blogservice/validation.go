package blogservice

import (
	"github.com/sushihentaime/mediumclone/internal/common"
)

func validateTitle(v *common.Validator, title string) {
	v.Check(title != "", "title", "must be provided")
	v.Check(v.CheckStringLength(title, 5, 500), "title", "must be between 5 and 500 characters long")
}

func validateBody(v *common.Validator, body string) {
	v.Check(body != "", "body", "must be provided")
	v.Check(v.CheckStringMinLength(body, 10), "body", "must be at least 10 characters long")
}

func validateCommentBody(v *common.Validator, body string) {
	v.Check(body != "", "body", "must be provided")
	v.Check(v.CheckStringMinLength(body, 5), "body", "must be at least 5 characters long")
}

func validateCategory(v *common.Validator, category Category) {
	v.Check(category.IsValid(), "category", "must be a known category")
}

func validateInt(v *common.Validator, num int, name string) {
	v.Check(num > 0, name, "must be greater than zero")
}
