// Package web 单页前端：表单 + 结果展示，静态资源编译进二进制
package web

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed static
var staticFS embed.FS

var indexHTML = mustRead("static/index.html")

// Register 注册前端路由
//   - GET /          页面
//   - GET /static/*  脚本与样式
func Register(r *gin.Engine) {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}

	r.GET("/", Index)
	r.StaticFS("/static", http.FS(sub))
}

// Index 返回单页
func Index(c *gin.Context) {
	c.Header("Cache-Control", "no-cache")
	c.Data(http.StatusOK, "text/html; charset=utf-8", indexHTML)
}

func mustRead(name string) []byte {
	b, err := staticFS.ReadFile(name)
	if err != nil {
		panic(err)
	}
	return b
}
