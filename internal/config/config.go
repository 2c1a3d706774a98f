package config

import (
	"fmt"
	"os"
	"strings"

	apperrors "github.com/darkkaiser/farm-server/internal/pkg/errors"
	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

const (
	// AppName 애플리케이션의 전역 고유 식별자입니다.
	AppName string = "farm-server"

	// DefaultFilename 실행 인자로 경로가 주어지지 않았을 때 읽는 설정 파일명입니다.
	DefaultFilename = AppName + ".json"

	// DefaultDotEnvFilename 환경 변수를 보충하는 .env 파일명입니다. 파일이 없으면 무시됩니다.
	DefaultDotEnvFilename = ".env"

	// EnvPrefix 설정을 덮어쓰는 환경 변수의 접두사입니다.
	// 이중 언더스코어(__)는 계층 구분자로 변환됩니다. 예: FARM_HTTP__LISTEN_PORT -> http.listen_port
	EnvPrefix = "FARM_"
)

// Load 기본 설정 파일을 읽어 애플리케이션 설정을 로드합니다.
func Load() (*AppConfig, error) {
	return LoadWithFile(DefaultFilename)
}

// LoadWithFile 지정된 설정 파일을 읽어 AppConfig를 생성합니다.
//
// 우선순위 (뒤로 갈수록 높음):
//  1. 코드에 정의된 기본값 (newDefaultConfig)
//  2. JSON 설정 파일
//  3. .env 파일의 FARM_ 변수
//  4. 프로세스 환경 변수 FARM_
func LoadWithFile(filename string) (*AppConfig, error) {
	return load(filename, DefaultDotEnvFilename)
}

func load(filename, dotEnvFilename string) (*AppConfig, error) {
	k := koanf.New(".")

	// 1. 기본값
	if err := k.Load(structs.Provider(newDefaultConfig(), "json"), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "애플리케이션 기본 설정 로드에 실패했습니다")
	}

	// 2. JSON 설정 파일
	if err := k.Load(file.Provider(filename), json.Parser()); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.Wrap(err, apperrors.System, fmt.Sprintf("설정 파일을 찾을 수 없습니다: '%s'", filename))
		}
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일 로드 중 오류가 발생했습니다: '%s'", filename))
	}

	// 3. .env 파일 (프로세스 환경을 오염시키지 않도록 godotenv.Read로 읽어 koanf에만 반영합니다)
	if err := loadDotEnv(k, dotEnvFilename); err != nil {
		return nil, err
	}

	// 4. 프로세스 환경 변수
	if err := k.Load(env.Provider(EnvPrefix, ".", normalizeEnvKey), nil); err != nil {
		return nil, apperrors.Wrap(err, apperrors.System, "환경 변수 로드에 실패했습니다")
	}

	var appConfig AppConfig
	if err := k.UnmarshalWithConf("", &appConfig, koanf.UnmarshalConf{
		Tag: "json",
		DecoderConfig: &mapstructure.DecoderConfig{
			ErrorUnused:      true, // 구조체에 없는 설정 키는 오타로 간주합니다.
			WeaklyTypedInput: true, // 환경 변수의 문자열 값을 숫자/불리언으로 변환합니다.
		},
	}); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, "설정 데이터를 애플리케이션 구조체로 변환하는데 실패했습니다")
	}

	if err := appConfig.validate(newValidator()); err != nil {
		return nil, apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf("설정 파일('%s')의 유효성 검증에 실패했습니다", filename))
	}

	return &appConfig, nil
}

// loadDotEnv .env 파일에서 EnvPrefix로 시작하는 값만 골라 설정에 반영합니다.
func loadDotEnv(k *koanf.Koanf, filename string) error {
	if filename == "" {
		return nil
	}
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}

	vars, err := godotenv.Read(filename)
	if err != nil {
		return apperrors.Wrap(err, apperrors.InvalidInput, fmt.Sprintf(".env 파일을 읽을 수 없습니다: '%s'", filename))
	}

	for key, value := range vars {
		if !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		if err := k.Set(normalizeEnvKey(key), value); err != nil {
			return apperrors.Wrap(err, apperrors.System, fmt.Sprintf(".env 값 적용에 실패했습니다: '%s'", key))
		}
	}

	return nil
}

// normalizeEnvKey FARM_STORAGE__BACKUP__TIME_SPEC -> storage.backup.time_spec
func normalizeEnvKey(s string) string {
	s = strings.TrimPrefix(s, EnvPrefix)
	s = strings.ToLower(s)
	return strings.ReplaceAll(s, "__", ".")
}
