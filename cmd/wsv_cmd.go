package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/dzjyyds666/wq/parse/wsv"
	"github.com/dzjyyds666/wq/pkg"
	"github.com/spf13/cobra"
)

type WsvParams struct {
	Input  string `json:"input"`  // 输入文件路径
	Output string `json:"output"` // 输出文件地址
	Json   bool   `json:"json"`   // 输出为json格式
}

var params *WsvParams

var wsvCmd = &cobra.Command{
	Use:   "wsv",
	Short: "wsv parse tools",
	Run:   wsvRun,
}

func init() {
	params = &WsvParams{}
	wsvCmd.Flags().StringVarP(&params.Input, "input", "i", "", "input file path")
	wsvCmd.Flags().StringVarP(&params.Output, "output", "o", "", "output path")
	wsvCmd.Flags().BoolVarP(&params.Json, "json", "j", false, "output as json")
}

func wsvRun(cmd *cobra.Command, args []string) {
	if len(params.Input) == 0 {
		fmt.Println("no input file path")
		return
	}
	exist, err := pkg.CheckFileExist(params.Input)
	if err != nil {
		fmt.Println("check file exist error:", err)
		return
	}
	if !exist {
		fmt.Println("input file not exist")
		return
	}

	text, err := pkg.ReadFileText(params.Input)
	if err != nil {
		fmt.Println("read input file error:", err)
		return
	}

	doc, err := wsv.ParseDocument(text)
	if err != nil {
		fmt.Println("parse wsv error:", err)
		return
	}

	var out string
	if params.Json {
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			fmt.Println("marshal json error:", err)
			return
		}
		out = string(data)
	} else {
		out = wsv.SerializeDocument(doc)
	}

	if len(params.Output) == 0 {
		fmt.Println(out)
		return
	}
	if err := pkg.WriteFileText(params.Output, out); err != nil {
		fmt.Println("write output file error:", err)
	}
}
