package controllers

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"farmfresh/classifier"
	"farmfresh/utils"
)

// PredictController 处理图像新鲜度识别转发
type PredictController struct {
	Classifier classifier.Client
	UploadDir  string
}

// NewPredictController 创建一个新的PredictController实例
func NewPredictController(client classifier.Client, uploadDir string) *PredictController {
	return &PredictController{Classifier: client, UploadDir: uploadDir}
}

// Predict 接收上传图片，保存后转发给分类服务
func (c *PredictController) Predict(ctx *gin.Context) {
	file, err := ctx.FormFile("image")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "No image uploaded"})
		return
	}

	name, err := utils.GenerateUploadName(filepath.Ext(file.Filename))
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "生成文件名失败"})
		return
	}

	if err := os.MkdirAll(c.UploadDir, 0o755); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "创建上传目录失败"})
		return
	}

	savePath := filepath.Join(c.UploadDir, name)
	if err := ctx.SaveUploadedFile(file, savePath); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "保存文件失败"})
		return
	}

	result, err := c.Classifier.Predict(ctx.Request.Context(), savePath)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed."})
		return
	}

	ctx.JSON(http.StatusOK, result)
}

// PredictUploaded 对上传目录中已有的图片做识别
// 需要 ?file=FILENAME 查询参数
func (c *PredictController) PredictUploaded(ctx *gin.Context) {
	fileName := ctx.Query("file")
	if fileName == "" {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "file query parameter is required"})
		return
	}
	if !utils.ValidateUploadName(fileName) {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid file name"})
		return
	}

	filePath := filepath.Join(c.UploadDir, fileName)
	if info, err := os.Stat(filePath); err != nil || info.IsDir() {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "File not found: " + fileName})
		return
	}

	result, err := c.Classifier.Predict(ctx.Request.Context(), filePath)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Prediction failed."})
		return
	}

	ctx.JSON(http.StatusOK, result)
}
