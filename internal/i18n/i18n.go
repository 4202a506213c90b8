package i18n

import "strings"

// messages is the pt-BR string table. All user-facing text goes through T;
// handlers never hardcode reply strings.
var messages = map[string]string{
	"roll.title":            "🎲 Rolagem de dados",
	"roll.result":           "**{user}** rolou **{expr}**: {results}",
	"roll.total":            "Total: **{total}**",
	"roll.invalid":          "Expressão de dados inválida: {reason}",
	"question.title":        "💬 Suzi responde",
	"question.empty":        "Você precisa escrever uma pergunta.",
	"game.title":            "🕹️ {game}",
	"game.empty":            "Você precisa informar o nome de um jogo.",
	"register.title":        "📋 Registro",
	"register.done":         "**{user}** registrado com sucesso!",
	"profile.title":         "Perfil de {user}",
	"profile.level":         "Nível",
	"profile.xp":            "XP",
	"profile.streak":        "Sequência diária",
	"profile.days":          "{days} dia(s)",
	"profile.titles":        "Títulos",
	"profile.none":          "Nenhum ainda",
	"level.title":           "⭐ Nível de {user}",
	"level.progress":        "{current}/{needed} XP ({percent}%)",
	"levelup":               "⬆️ **{user}** subiu para o nível **{level}**!",
	"help.title":            "📖 Comandos da Suzi",
	"about.title":           "🤖 Sobre a Suzi",
	"about.body":            "Suzi é um bot de ajuda para jogos: rola dados, responde perguntas, acompanha seu XP e suas conquistas.",
	"steam.title":           "🎮 Perfil Steam",
	"steam.empty":           "Você precisa informar um id ou vanity URL da Steam.",
	"achievements.title":    "🏅 Conquistas de {user}",
	"achievements.none":     "Nenhuma conquista desbloqueada ainda.",
	"achievements.unlocked": "🏅 Conquista desbloqueada!",
	"titles.title":          "👑 Títulos de {user}",
	"titles.none":           "Nenhum título desbloqueado ainda.",
	"titles.granted":        "👑 Novo título: {title}",
	"error.generic":         "Algo deu errado. Tente novamente em instantes.",
	"error.validation":      "Entrada inválida",
	"error.cooldown":        "Calma! Espere um pouco antes de usar esse comando de novo.",
	"error.NOT_FOUND":       "Não encontrei nada com esse identificador.",
	"error.AUTH":            "O serviço externo recusou as credenciais do bot.",
	"error.RATE_LIMIT":      "O serviço externo está limitando as consultas. Tente de novo em instantes.",
	"error.TIMEOUT":         "O serviço externo demorou demais para responder.",
	"error.SERVER":          "O serviço externo está com problemas. Tente mais tarde.",
	"error.NETWORK":         "Não consegui falar com o serviço externo.",
	"error.UNKNOWN":         "Erro inesperado ao consultar o serviço externo.",
}

// T looks up a message key and substitutes {var} placeholders. An unknown
// key returns the key itself so a missing string is visible, not a crash.
func T(key string, vars map[string]string) string {
	msg, ok := messages[key]
	if !ok {
		return key
	}
	for k, v := range vars {
		msg = strings.ReplaceAll(msg, "{"+k+"}", v)
	}
	return msg
}
