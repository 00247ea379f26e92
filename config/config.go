package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/assetbridge/chainext/chainext"
	"github.com/assetbridge/chainext/config/types"
	"github.com/assetbridge/chainext/ledger/assets"
	"github.com/assetbridge/chainext/log"
	"github.com/assetbridge/chainext/rpc"
	"github.com/assetbridge/chainext/vmhost"
	"github.com/invopop/jsonschema"
	"github.com/mitchellh/mapstructure"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"github.com/urfave/cli/v2"
)

const (
	// FlagCfg is the flag for cfg.
	FlagCfg = "cfg"
	// FlagOutputFile is the flag for the output file
	FlagOutputFile = "output"
	// FlagSaveConfigPath is the flag to save the final configuration file
	FlagSaveConfigPath = "save-config-path"

	EnvVarPrefix       = "ASSETBRIDGE"
	ConfigType         = "toml"
	SaveConfigFileName = "assetbridge_config.toml"

	DefaultCreationFilePermissions = os.FileMode(0600)
)

/*
Config represents the configuration of the assetbridge node
The file is [TOML format]

[TOML format]: https://en.wikipedia.org/wiki/TOML
*/
type Config struct {
	// Configure Log level for all the services, allow also to store the logs in a file
	Log log.Config
	// Ledger is the configuration of the sqlite asset ledger
	Ledger assets.Config
	// ChainExtension configures the dispatcher
	ChainExtension chainext.Config
	// VM configures the contract host
	VM vmhost.Config
	// RPC is the config for the RPC server
	RPC rpc.Config
}

// Load loads the configuration
func Load(ctx *cli.Context) (*Config, error) {
	filesData, err := readFiles(ctx.StringSlice(FlagCfg))
	if err != nil {
		return nil, fmt.Errorf("error reading files: Err:%w", err)
	}
	return LoadFile(filesData, ctx.String(FlagSaveConfigPath))
}

func readFiles(files []string) ([]FileData, error) {
	result := make([]FileData, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("error reading file content: %s. Err:%w", file, err)
		}
		fileContent := string(content)
		if ext := getFileExtension(file); ext != ConfigType {
			fileContent, err = convertFileToToml(fileContent, ext)
			if err != nil {
				return nil, fmt.Errorf("error converting file: %s from %s to TOML. Err:%w", file, ext, err)
			}
		}
		result = append(result, FileData{Name: file, Content: fileContent})
	}
	return result, nil
}

func getFileExtension(fileName string) string {
	return fileName[strings.LastIndex(fileName, ".")+1:]
}

// LoadFile renders the defaults followed by files and decodes the result.
// When saveConfigPath is set the rendered TOML is written there.
func LoadFile(files []FileData, saveConfigPath string) (*Config, error) {
	fileData := make([]FileData, 0, len(files)+2)
	fileData = append(fileData, FileData{Name: "default_vars", Content: DefaultVars})
	fileData = append(fileData, FileData{Name: "default_values", Content: DefaultValues})
	fileData = append(fileData, files...)

	rendered, err := NewRenderer(fileData, EnvVarPrefix).Render()
	if err != nil {
		return nil, err
	}
	if saveConfigPath != "" {
		fullPath := filepath.Join(saveConfigPath, SaveConfigFileName)
		if err := os.WriteFile(fullPath, []byte(rendered), DefaultCreationFilePermissions); err != nil {
			err = fmt.Errorf("error writing config file: %s. Err: %w", fullPath, err)
			log.Error(err)
			return nil, err
		}
	}
	return LoadFileFromString(rendered, ConfigType)
}

// LoadFileFromString decodes a rendered configuration. Environment variables
// prefixed with EnvVarPrefix override its values.
func LoadFileFromString(configFileData string, configType string) (*Config, error) {
	cfg := &Config{}
	if err := loadString(cfg, configFileData, configType, true, EnvVarPrefix); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadString(cfg *Config, configData string, configType string, allowEnvVars bool, envPrefix string) error {
	v := viper.New()
	v.SetConfigType(configType)
	if allowEnvVars {
		v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
		v.SetEnvPrefix(envPrefix)
		v.AutomaticEnv()
	}
	if err := v.ReadConfig(bytes.NewBufferString(configData)); err != nil {
		return err
	}
	decodeHooks := []viper.DecoderConfigOption{
		// this allows arrays to be decoded from env var separated by ",", example: MY_VAR="value1,value2,value3"
		viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
			mapstructure.TextUnmarshallerHookFunc(), mapstructure.StringToSliceHookFunc(","))),
	}
	return v.Unmarshal(cfg, decodeHooks...)
}

// SaveConfigToString encodes cfg as TOML
func SaveConfigToString(cfg Config) (string, error) {
	// the JSON round trip applies the text marshalers of the leaf types
	b, err := json.Marshal(cfg)
	if err != nil {
		return "", err
	}
	var tree map[string]interface{}
	if err := json.Unmarshal(b, &tree); err != nil {
		return "", err
	}
	out, err := toml.Marshal(dropNulls(tree))
	if err != nil {
		return "", err
	}
	return string(out), nil
}

func dropNulls(m map[string]interface{}) map[string]interface{} {
	for k, v := range m {
		switch vv := v.(type) {
		case nil:
			delete(m, k)
		case map[string]interface{}:
			m[k] = dropNulls(vv)
		}
	}
	return m
}

// Schema returns the JSON schema of Config
func Schema() ([]byte, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		FieldNameTag:   "mapstructure",
	}
	s := r.Reflect(&Config{})
	s.Title = "assetbridge config file"
	describeDurations(s)
	return json.MarshalIndent(s, "", "  ")
}

// describeDurations puts back the description of Duration fields, which the
// reflector replaces with the (empty) description of the struct field
func describeDurations(s *jsonschema.Schema) {
	if s == nil {
		return
	}
	if s.Title == types.DurationTitle && s.Description == "" {
		s.Description = types.DurationDescription
	}
	if s.Properties == nil {
		return
	}
	for pair := s.Properties.Oldest(); pair != nil; pair = pair.Next() {
		describeDurations(pair.Value)
	}
}
