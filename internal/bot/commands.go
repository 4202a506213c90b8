package bot

import (
	"github.com/bwmarrin/discordgo"
)

// Command definitions
var commands = []*discordgo.ApplicationCommand{
	{
		Name:        "rolar",
		Description: "Rola dados (ex: d20, 2d6)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "dados",
				Description: "Expressão de dados (padrão: d20)",
				Required:    false,
			},
		},
	},
	{
		Name:        "pergunta",
		Description: "Faz uma pergunta sobre jogos para a Suzi",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "texto",
				Description: "Sua pergunta",
				Required:    true,
			},
		},
	},
	{
		Name:        "jogo",
		Description: "Resumo e dicas de um jogo",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "nome",
				Description: "Nome do jogo",
				Required:    true,
			},
		},
	},
	{
		Name:        "registrar",
		Description: "Registra você no servidor da Suzi",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "nick",
				Description: "Apelido (padrão: seu nome de usuário)",
				Required:    false,
			},
		},
	},
	{
		Name:        "perfil",
		Description: "Mostra o cartão de perfil",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "usuario",
				Description: "Outro usuário (padrão: você)",
				Required:    false,
			},
		},
	},
	{
		Name:        "nivel",
		Description: "Mostra nível e progresso de XP",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "usuario",
				Description: "Outro usuário (padrão: você)",
				Required:    false,
			},
		},
	},
	{
		Name:        "steam",
		Description: "Busca um perfil na Steam",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "id",
				Description: "SteamID64 ou vanity URL",
				Required:    true,
			},
		},
	},
	{
		Name:        "conquistas",
		Description: "Lista suas conquistas desbloqueadas",
	},
	{
		Name:        "titulos",
		Description: "Lista seus títulos desbloqueados",
	},
	{
		Name:        "ajuda",
		Description: "Lista os comandos da Suzi",
	},
	{
		Name:        "sobre",
		Description: "Sobre a Suzi",
	},
}
