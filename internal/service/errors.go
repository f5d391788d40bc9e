package service

import (
	"errors"
)

const (
	BadRequest          = 400
	Unauthorized        = 401
	Forbidden           = 403
	NotFound            = 404
	InternalServerError = 500
)

var (
	ErrParamInvalid        = errors.New("参数错误")
	ErrUserNotFound        = errors.New("用户不存在")
	ErrUserEmailExist      = errors.New("邮箱已注册")
	ErrPasswordIncorrect   = errors.New("邮箱或密码错误")
	ErrArticleNotFound     = errors.New("文章不存在")
	ErrCategoryNotFound    = errors.New("分类不存在")
	ErrListingNotFound     = errors.New("商品不存在")
	ErrPollNotFound        = errors.New("投票不存在")
	ErrPollOptionNotFound  = errors.New("投票选项不存在")
	ErrPollOptionTooFew    = errors.New("投票至少需要两个选项")
	ErrCommentEmpty        = errors.New("评论内容不能为空")
	ErrPriceNegative       = errors.New("价格不能为负数")
	ErrActionDuplicate     = errors.New("重复操作")
	ErrFileNotSupported    = errors.New("不支持的文件类型")
	ErrImportFailed        = errors.New("外部文章抓取失败")
	UnauthorizedError      = errors.New("权限不足")
	UnExpectedError        = errors.New("系统异常，请稍后重试")
)

var ErrorMap = map[error]int{
	ErrParamInvalid:       BadRequest,
	ErrUserNotFound:       NotFound,
	ErrUserEmailExist:     BadRequest,
	ErrPasswordIncorrect:  Unauthorized,
	ErrArticleNotFound:    NotFound,
	ErrCategoryNotFound:   NotFound,
	ErrListingNotFound:    NotFound,
	ErrPollNotFound:       NotFound,
	ErrPollOptionNotFound: NotFound,
	ErrPollOptionTooFew:   BadRequest,
	ErrCommentEmpty:       BadRequest,
	ErrPriceNegative:      BadRequest,
	ErrActionDuplicate:    BadRequest,
	ErrFileNotSupported:   BadRequest,
	ErrImportFailed:       InternalServerError,
	UnauthorizedError:     Unauthorized,
	UnExpectedError:       InternalServerError,
}
