package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strings"

	"github.com/assetbridge/chainext/log"
	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
	"github.com/valyala/fasttemplate"
)

const (
	startTag = "{{"
	endTag   = "}}"
	// typeMark keeps a bare var parseable as a TOML string while merging
	typeMark = ":int"
)

var (
	ErrCycleVars                 = errors.New("cycle vars")
	ErrMissingVars               = errors.New("missing vars")
	ErrUnsupportedConfigFileType = errors.New("unsupported config file type")

	// A = {{B}}
	bareVarRe = regexp.MustCompile(`=\s*\{\{([^}:]+)\}\}`)
	// A = "{{B:int}}"
	quotedMarkedVarRe = regexp.MustCompile(`=\s*\"\{\{([^}:]+):int\}\}\"`)
	// {{B:int}}
	markedVarRe = regexp.MustCompile(`\{\{([^}:]+):int\}\}`)
)

// FileData is one of the sources merged by the Renderer
type FileData struct {
	Name    string
	Content string
}

// Renderer merges TOML files, later files overriding earlier ones, and then
// resolves the {{Var}} references of the result. A var is looked up first in
// the environment, as PREFIX_Var with dots turned into underscores, then in
// the merged document.
type Renderer struct {
	FilesData []FileData
	// LookupEnvFunc resolves environment variables, typically os.LookupEnv
	LookupEnvFunc func(key string) (string, bool)
	EnvPrefix     string
}

func NewRenderer(filesData []FileData, envPrefix string) *Renderer {
	return &Renderer{
		FilesData:     filesData,
		LookupEnvFunc: os.LookupEnv,
		EnvPrefix:     envPrefix,
	}
}

// Render merges every file and resolves the vars
func (r *Renderer) Render() (string, error) {
	merged, err := r.Merge()
	if err != nil {
		return "", fmt.Errorf("fail to merge files. Err: %w", err)
	}
	return r.ResolveVars(merged)
}

// Merge loads the files in order into a single TOML document
func (r *Renderer) Merge() (string, error) {
	k := koanf.New(".")
	for _, data := range r.FilesData {
		content := markBareVars(data.Content)
		if err := k.Load(rawbytes.Provider([]byte(content)), toml.Parser()); err != nil {
			log.Errorf("error loading file %s. Err:%v. FileData: %v", data.Name, err, content)
			return "", fmt.Errorf("fail to load converted template %s to toml. Err: %w", data.Name, err)
		}
	}
	marshaled, err := k.Marshal(toml.Parser())
	if err != nil {
		return "", fmt.Errorf("fail to marshal to toml. Err: %w", err)
	}
	return unquoteMarkedVars(string(marshaled)), nil
}

// ResolveVars replaces every var of data. Vars that are referenced but never
// defined are reported as ErrMissingVars, vars that only resolve to each other
// as ErrCycleVars.
func (r *Renderer) ResolveVars(data string) (string, error) {
	tpl, values, err := r.readTemplate(data)
	if err != nil {
		return "", err
	}
	rendered := stripTypeMarks(r.execute(tpl, values))
	if missing := r.unresolvedVars(tpl, values); len(missing) > 0 {
		return rendered, fmt.Errorf("missing vars: %v. Err: %w", missing, ErrMissingVars)
	}
	// vars pointing to other vars need more passes
	resolved, err := r.resolvePending(rendered)
	if err != nil {
		return data, err
	}
	return resolved, nil
}

// resolvePending renders data until no var is left. Each pass must reduce the
// number of vars, otherwise they form a cycle.
func (r *Renderer) resolvePending(data string) (string, error) {
	current := unquoteMarkedVars(data)
	pending := Vars(current)
	if len(pending) == 0 {
		return data, nil
	}
	log.Debugf("resolving pending vars: %v", pending)
	for len(pending) > 0 {
		previous := pending
		tpl, values, err := r.readTemplate(current)
		if err != nil {
			return "", fmt.Errorf("fails to read template on pending vars. Err: %w", err)
		}
		current = stripTypeMarks(unquoteMarkedVars(r.execute(tpl, values)))
		pending = Vars(current)
		if len(pending) == len(previous) {
			return data, fmt.Errorf("not resolved cycle vars: %v. Err: %w", pending, ErrCycleVars)
		}
	}
	return current, nil
}

// readTemplate parses data as a template and as TOML. Vars in data must be
// bare, A={{B}} and not A="{{B}}".
func (r *Renderer) readTemplate(data string) (*fasttemplate.Template, map[string]interface{}, error) {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return nil, nil, fmt.Errorf("fail to load template. Err: %w", err)
	}
	k := koanf.New(".")
	if err := k.Load(rawbytes.Provider([]byte(markBareVars(data))), toml.Parser()); err != nil {
		return nil, nil, fmt.Errorf("error parsing template values. Err: %w", err)
	}
	return tpl, k.All(), nil
}

func (r *Renderer) execute(tpl *fasttemplate.Template, values map[string]interface{}) string {
	return tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if v, ok := r.lookupEnv(tag); ok {
			return w.Write([]byte(v))
		}
		if v, ok := values[tag]; ok {
			return w.Write([]byte(fmt.Sprintf("%v", v)))
		}
		return w.Write([]byte(startTag + tag + endTag))
	})
}

// unresolvedVars lists the vars of tpl defined neither in values nor in the environment
func (r *Renderer) unresolvedVars(tpl *fasttemplate.Template, values map[string]interface{}) []string {
	var unresolved []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		if _, ok := r.lookupEnv(tag); ok {
			return 0, nil
		}
		if _, ok := values[tag]; !ok && !contains(unresolved, tag) {
			unresolved = append(unresolved, tag)
		}
		return 0, nil
	})
	return unresolved
}

func (r *Renderer) lookupEnv(tag string) (string, bool) {
	return r.LookupEnvFunc(r.EnvPrefix + "_" + strings.ReplaceAll(tag, ".", "_"))
}

// Vars returns every var referenced in data
func Vars(data string) []string {
	tpl, err := fasttemplate.NewTemplate(data, startTag, endTag)
	if err != nil {
		return []string{}
	}
	var vars []string
	tpl.ExecuteFuncString(func(w io.Writer, tag string) (int, error) {
		vars = append(vars, tag)
		return 0, nil
	})
	return vars
}

func markBareVars(data string) string {
	return bareVarRe.ReplaceAllString(data, `= "{{${1}`+typeMark+`}}"`)
}

func unquoteMarkedVars(data string) string {
	return quotedMarkedVarRe.ReplaceAllString(data, "= {{${1}}}")
}

func stripTypeMarks(data string) string {
	return markedVarRe.ReplaceAllString(data, "{{${1}}}")
}

func contains(values []string, search string) bool {
	for _, v := range values {
		if v == search {
			return true
		}
	}
	return false
}

// convertFileToToml turns a JSON config into TOML, TOML is returned as is
func convertFileToToml(fileData string, fileType string) (string, error) {
	switch strings.ToLower(fileType) {
	case "json":
		k := koanf.New(".")
		if err := k.Load(rawbytes.Provider([]byte(fileData)), json.Parser()); err != nil {
			return fileData, fmt.Errorf("error loading json file. Err: %w", err)
		}
		tomlData, err := toml.Parser().Marshal(k.Raw())
		if err != nil {
			return fileData, fmt.Errorf("error converting json to toml. Err: %w", err)
		}
		return string(tomlData), nil
	case "yml", "yaml", "ini":
		return fileData, fmt.Errorf("cant convert from %s to TOML. Err: %w", fileType, ErrUnsupportedConfigFileType)
	default:
		log.Warnf("filetype %s unknown, assuming is a TOML file", fileType)
		return fileData, nil
	}
}
