package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

// @title Farm Server API
// @version 1.0.0
// @description 농장(Farm) 정보를 등록, 조회, 수정, 삭제, 검색하는 REST API 서버입니다.
// @description
// @description ## 주요 기능
// @description - 농장 목록/단건 조회
// @description - 농장 등록, 전체 교체 수정, 삭제
// @description - 농장명과 위치로 부분 일치 검색 (대소문자 무시)
// @description
// @description ## 오류 응답
// @description 모든 오류는 `{"result_code": <HTTP 상태 코드>, "message": "<설명>"}` 형식으로 반환됩니다.

// @contact.name DarkKaiser
// @contact.url https://github.com/DarkKaiser
// @contact.email darkkaiser@gmail.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @BasePath /

const banner = `
  _____                          ____
 |  ___|__ _  _ __  _ __ ___    / ___|   ___  _ __ __   __  ___  _ __
 | |_  / _' || '__|| '_ ' _ \   \___ \  / _ \| '__|\ \ / / / _ \| '__|
 |  _|| (_| || |   | | | | | |   ___) ||  __/| |    \ V / |  __/| |
 |_|   \__,_||_|   |_| |_| |_|  |____/  \___||_|     \_/   \___||_|
                                                              %s
                                                        developed by DarkKaiser
--------------------------------------------------------------------------------
`

func main() {
	// SIGINT, SIGTERM 수신 시 ctx가 취소되어 모든 서비스가 종료 절차를 밟습니다.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "[FATAL] %v\n", err)
		stop()
		os.Exit(1)
	}
}
