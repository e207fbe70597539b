package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"cloud.google.com/go/civil"
)

// errInvalidForm はフォームの解析に失敗した場合に返却されます。
var errInvalidForm = errors.New("handler: invalid form")

func parseForm(r *http.Request) error {
	if err := r.ParseForm(); err != nil {
		return fmt.Errorf("%w: %v", errInvalidForm, err)
	}
	return nil
}

// optionalDate は空文字を未指定として扱います。
func optionalDate(raw string, invalid error) (*civil.Date, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := civil.ParseDate(raw)
	if err != nil {
		return nil, invalid
	}
	return &d, nil
}

func requiredDate(raw string, invalid error) (civil.Date, error) {
	d, err := optionalDate(raw, invalid)
	if err != nil {
		return civil.Date{}, err
	}
	if d == nil {
		return civil.Date{}, invalid
	}
	return *d, nil
}

func optionalFloat(raw string) (*float64, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errInvalidForm, err)
	}
	return &v, nil
}

// optional は空文字を nil として返します。
func optional[T ~string](raw string) *T {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	v := T(raw)
	return &v
}

func splitTags(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return strings.Split(raw, ",")
}

// redirectBack はフォームの return に保存された検索条件の画面へ 303 で戻します。
func redirectBack(w http.ResponseWriter, r *http.Request, anchor string) {
	target := "/"
	if values, err := url.ParseQuery(r.PostFormValue("return")); err == nil {
		if enc := values.Encode(); enc != "" {
			target += "?" + enc
		}
	}
	if anchor != "" {
		target += "#" + anchor
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}
