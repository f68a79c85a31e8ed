package config

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/dsnet/compress/bzip2"
	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/go-viper/mapstructure/v2"
	da "github.com/lintang-b-s/meshload/pkg/datastructure"
	"github.com/lintang-b-s/meshload/pkg/util"
	"github.com/spf13/viper"
)

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(validate, trans); err != nil {
		panic(fmt.Sprintf("config: registering validator translations: %v", err))
	}
}

// Load reads a NoC description from path. The format follows the file extension
// (json, yaml, toml, ...); a trailing .bz2 means the file is bzip2 compressed.
func Load(path string) (*NoCConfig, error) {
	if strings.HasSuffix(path, ".bz2") {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		bz, err := bzip2.NewReader(f, &bzip2.ReaderConfig{})
		if err != nil {
			return nil, err
		}
		defer bz.Close()

		inner := strings.TrimSuffix(path, ".bz2")
		return DecodeAs(bz, strings.TrimPrefix(filepath.Ext(inner), "."))
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "reading %s", path)
	}
	return unmarshal(v)
}

// Decode reads a JSON NoC description from r.
func Decode(r io.Reader) (*NoCConfig, error) {
	return DecodeAs(r, "json")
}

func DecodeAs(r io.Reader, configType string) (*NoCConfig, error) {
	v := viper.New()
	v.SetConfigType(configType)
	if err := v.ReadConfig(r); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "parsing %s description", configType)
	}
	return unmarshal(v)
}

func unmarshal(v *viper.Viper) (*NoCConfig, error) {
	cfg := &NoCConfig{}
	if err := v.Unmarshal(cfg, strictDecoding); err != nil {
		return nil, util.WrapErrorf(err, util.ErrBadParamInput, "decoding description")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// strictDecoding turns off viper's weak typing so "3" is not an int and "5" is not a
// weight, and rejects fractional numbers for integer fields.
func strictDecoding(dc *mapstructure.DecoderConfig) {
	dc.WeaklyTypedInput = false
	dc.DecodeHook = mapstructure.DecodeHookFuncType(integralHook)
}

func integralHook(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() != reflect.Float64 && from.Kind() != reflect.Float32 {
		return data, nil
	}
	switch to.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return data, nil
	}
	f := reflect.ValueOf(data).Float()
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return nil, fmt.Errorf("expected an integer, got %v", f)
	}
	return data, nil
}

// ValidateStruct checks s against its validate tags with the shared validator.
func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

// Validate checks required fields and value ranges.
func (cfg *NoCConfig) Validate() error {
	err := validate.Struct(cfg)
	if err == nil {
		return nil
	}
	msgs := ValidationMessages(err)
	return util.WrapErrorf(err, util.ErrBadParamInput, "invalid description: %s", strings.Join(msgs, "; "))
}

// ValidationMessages translates validator errors into readable English messages.
func ValidationMessages(err error) []string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s: %s", e.Namespace(), e.Translate(trans)))
	}
	return msgs
}

func (cfg *NoCConfig) ParseBrokenLinks() (*da.BrokenLinks, error) {
	broken := da.NewBrokenLinks()
	for i, link := range cfg.BrokenLinks {
		u, err := da.ParseNode(link.Node1)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "broken_links[%d].node1", i)
		}
		v, err := da.ParseNode(link.Node2)
		if err != nil {
			return nil, util.WrapErrorf(err, util.ErrBadParamInput, "broken_links[%d].node2", i)
		}
		broken.Add(u, v)
	}
	return broken, nil
}

func (cfg *NoCConfig) ParseFlows() ([]da.Flow, error) {
	flows := make([]da.Flow, 0, len(cfg.Flows))
	for i, fc := range cfg.Flows {
		nodes := make([]da.Node, 0, len(fc.Path))
		for j, id := range fc.Path {
			n, err := da.ParseNode(id)
			if err != nil {
				return nil, util.WrapErrorf(err, util.ErrBadParamInput, "flows[%d].path[%d]", i, j)
			}
			nodes = append(nodes, n)
		}
		flows = append(flows, da.NewFlow(*fc.Weight, nodes))
	}
	return flows, nil
}

// Write stores cfg at path; the format follows the file extension.
func Write(path string, cfg *NoCConfig) error {
	v := viper.New()
	v.Set("grid", cfg.Grid)
	v.Set("broken_links", cfg.BrokenLinks)
	v.Set("flows", cfg.Flows)
	return v.WriteConfigAs(path)
}
