// Package assets はバイナリに同梱する初期データを提供します。
package assets

import _ "embed"

// DefaultSeed は設定で seed.path が指定されない場合に読み込む初期データです。
//
//go:embed seeds/default.yaml
var DefaultSeed []byte
