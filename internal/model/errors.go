package model

import "fmt"

// APIError は統一エラーフォーマットを表す。
// UIに表示する原因カテゴリと対処方法を含む。
type APIError struct {
	Code     string // エラーコード
	Message  string // エラーメッセージ
	Category string // カテゴリ: validation, feed, system
	Action   string // ユーザー向け対処方法
}

// Error はerrorインターフェースを実装する。
func (e *APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// 定義済みエラーコード
const (
	ErrCodeEmptyFeedList  = "EMPTY_FEED_LIST"
	ErrCodeInvalidURL     = "INVALID_URL"
	ErrCodeInvalidRequest = "INVALID_REQUEST"
	ErrCodeInternal       = "INTERNAL_ERROR"
)

// NewEmptyFeedListError はフィードリスト空の前提条件エラーを生成する。
// 集約はこのエラーの場合のみ開始前に失敗する。
func NewEmptyFeedListError() *APIError {
	return &APIError{
		Code:     ErrCodeEmptyFeedList,
		Message:  "取得対象のフィードが指定されていません。",
		Category: "validation",
		Action:   "1件以上のフィード設定を指定してください。",
	}
}

// NewInvalidURLError は無効なURLエラーを生成する。
func NewInvalidURLError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidURL,
		Message:  fmt.Sprintf("フィードURLが無効です: %s", reason),
		Category: "validation",
		Action:   "http/httpsのフィードURLを指定してください。",
	}
}

// NewInvalidRequestError はリクエスト解析エラーを生成する。
func NewInvalidRequestError(reason string) *APIError {
	return &APIError{
		Code:     ErrCodeInvalidRequest,
		Message:  fmt.Sprintf("リクエストの解析に失敗しました: %s", reason),
		Category: "validation",
		Action:   "正しいJSON形式でリクエストしてください。",
	}
}
