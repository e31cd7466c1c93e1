package utils

import (
	json "github.com/bytedance/sonic"
	"github.com/rs/zerolog/log"
)

func JsonString(obj any) string {
	jsonStr, err := json.Marshal(obj)
	if err != nil {
		log.Warn().Err(err).Msg("json marshal failed")
	}
	return string(jsonStr)
}

func JsonIndent(obj any) string {
	jsonStr, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		log.Warn().Err(err).Msg("json marshal failed")
	}
	return string(jsonStr)
}
