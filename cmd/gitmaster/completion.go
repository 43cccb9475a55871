package main

import (
	"fmt"
	"io"
	"os"
)

func completionMain(args []string) {
	if err := writeCompletion(args, os.Stdout); err != nil {
		log.Fatalf("%v", err)
	}
}

func writeCompletion(args []string, out io.Writer) error {
	shell := "bash"
	if len(args) > 0 && args[0] != "" {
		shell = args[0]
	}
	switch shell {
	case "bash":
		_, err := fmt.Fprint(out, bashCompletion)
		return err
	case "zsh":
		_, err := fmt.Fprint(out, zshCompletion)
		return err
	default:
		return fmt.Errorf("unsupported shell: %s (use bash or zsh)", shell)
	}
}

const bashCompletion = `
_gitmaster_completions()
{
    local cur
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "sim ask chapters ping features login logout completion --config --model --provider --chapter --terminal --markdown-style --enable --disable -c" -- "$cur") )
        return 0
    fi

    case "${COMP_WORDS[1]}" in
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            ;;
        sim)
            COMPREPLY=( $(compgen -W "--strict-commit" -- "$cur") )
            ;;
        ask)
            COMPREPLY=( $(compgen -W "--config --provider --model -c" -- "$cur") )
            ;;
        chapters)
            COMPREPLY=( $(compgen -W "--config --id --width" -- "$cur") )
            ;;
        ping)
            COMPREPLY=( $(compgen -W "--config --provider --model --base-url --api-key --timeout" -- "$cur") )
            ;;
        login)
            COMPREPLY=( $(compgen -W "status --config --provider --with-api-key" -- "$cur") )
            ;;
        *)
            COMPREPLY=( $(compgen -W "--config --model --provider --chapter --terminal --markdown-style -c" -- "$cur") )
            ;;
    esac
}
complete -F _gitmaster_completions gitmaster
`

const zshCompletion = `
#compdef gitmaster
_gitmaster() {
    local -a subcmds
    subcmds=('sim:run commands through the practice terminal' 'ask:ask the assistant one question' 'chapters:list or print chapters' 'ping:check the assistant provider' 'features:list feature flags' 'login:store an API key' 'logout:remove the stored API key' 'completion:print shell completions')
    if (( CURRENT == 2 )); then
        _describe 'command' subcmds
        return
    fi
    case "$words[2]" in
        completion)
            _values 'shell' bash zsh
            ;;
        sim)
            _arguments '--strict-commit[Require a commit message]'
            ;;
        chapters)
            _arguments \
                '--config[Path to config file]' \
                '--id[Chapter id to print]' \
                '--width[Wrap width]'
            ;;
        ping)
            _arguments \
                '--config[Path to config file]' \
                '--provider[Provider override]' \
                '--model[Model override]' \
                '--base-url[Base URL override]' \
                '--api-key[API key override]' \
                '--timeout[Timeout seconds]'
            ;;
        *)
            _arguments \
                '--config[Path to config file]' \
                '--model[Model override]' \
                '--provider[Provider override]' \
                '--chapter[Chapter to open first]' \
                '--terminal[Start in the practice terminal]' \
                '--markdown-style[Glamour style]' \
                '-c[Config key=value override]'
            ;;
    esac
}
compdef _gitmaster gitmaster
`
