// Package contract 内容策略包的 JSON Schema 契约
// 服务端通过 /api/schema 暴露，客户端在渲染/解码前用它校验响应
package contract

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
)

// BundleSchema 内容策略包 Schema 原文
//
//go:embed strategy_bundle.schema.json
var BundleSchema []byte

// ErrContractViolation 响应不符合契约
var ErrContractViolation = errors.New("strategy bundle contract violation")

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func bundleSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewBytesLoader(BundleSchema))
	})
	return schema, schemaErr
}

// ValidateBundle 校验原始 JSON 是否为合法的内容策略包
func ValidateBundle(raw []byte) error {
	s, err := bundleSchema()
	if err != nil {
		return fmt.Errorf("加载 schema 失败: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContractViolation, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return fmt.Errorf("%w: %s", ErrContractViolation, strings.Join(errs, "; "))
	}
	return nil
}
