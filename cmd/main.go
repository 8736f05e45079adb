package main

import (
	"github.com/NguyenDinhPhat-22CT112/healthAI/config"
	"github.com/NguyenDinhPhat-22CT112/healthAI/routes"
	"github.com/NguyenDinhPhat-22CT112/healthAI/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
