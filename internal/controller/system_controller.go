package controller

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"fluentleap_backend/internal/config"
	"fluentleap_backend/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SystemController 诊断与schema自省接口
type SystemController struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewSystemController(db *gorm.DB, cfg *config.Config) *SystemController {
	return &SystemController{DB: db, Config: cfg}
}

// @Summary 根路径问候
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func (c *SystemController) Root(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello from FluentLeap Backend!"})
}

// @Summary API问候
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]string
// @Router /api/hello [get]
func (c *SystemController) Hello(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"message": "Hello from the backend API!"})
}

// @Summary 数据库诊断
// @Description 报告后端/数据库状态与连接配置是否齐全，其余接口不做此类兜底
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /test [get]
func (c *SystemController) TestDatabase(ctx *gin.Context) {
	response := gin.H{
		"backend":           "✅ Running",
		"database":          "❌ Not Available",
		"database_url":      "❌ Not Set",
		"database_name":     "❌ Not Set",
		"connection_status": "Not Connected",
		"collections":       []string{},
	}

	if c.Config.Database.Host != "" {
		response["database_url"] = "✅ Set"
	}
	if c.Config.Database.DBName != "" {
		response["database_name"] = "✅ Set"
	}

	if c.DB == nil {
		response["database"] = "❌ Database not initialized"
		ctx.JSON(http.StatusOK, response)
		return
	}
	response["database"] = "✅ Available"

	tables, err := c.DB.Migrator().GetTables()
	if err != nil {
		msg := err.Error()
		if len(msg) > 50 {
			msg = msg[:50]
		}
		response["database"] = fmt.Sprintf("⚠️  Connected but Error: %s", msg)
		ctx.JSON(http.StatusOK, response)
		return
	}

	if len(tables) > 10 {
		tables = tables[:10]
	}
	response["collections"] = tables
	response["database"] = "✅ Connected & Working"
	response["connection_status"] = "Connected"

	ctx.JSON(http.StatusOK, response)
}

// @Summary 实体schema自省
// @Description 返回每个实体的字段名到Go类型的映射，供查看工具使用
// @Tags 系统
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /schema [get]
func (c *SystemController) Schema(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"challenge":      modelFields(model.Challenge{}),
		"story":          modelFields(model.Story{}),
		"feedback":       modelFields(model.Feedback{}),
		"timelineevent":  modelFields(model.TimelineEvent{}),
		"practiceresult": modelFields(model.PracticeResult{}),
	})
}

// modelFields 展开嵌套结构，按json标签列出字段类型
func modelFields(m interface{}) map[string]string {
	fields := make(map[string]string)
	collectFields(reflect.TypeOf(m), fields)
	return fields
}

func collectFields(t reflect.Type, fields map[string]string) {
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct {
			collectFields(f.Type, fields)
			continue
		}
		name := f.Tag.Get("json")
		if comma := strings.IndexByte(name, ','); comma >= 0 {
			name = name[:comma]
		}
		if name == "" || name == "-" {
			continue
		}
		fields[name] = f.Type.String()
	}
}
