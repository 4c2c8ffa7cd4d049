package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"go.uber.org/zap"

	"github.com/souconcursado/core/internal/catalog"
	"github.com/souconcursado/core/internal/contests"
	"github.com/souconcursado/core/internal/diagnosis"
	"github.com/souconcursado/core/internal/logger"
	"github.com/souconcursado/core/internal/matcher"
	"github.com/souconcursado/core/internal/models"
	"github.com/souconcursado/core/internal/session"
	"github.com/souconcursado/core/internal/storage"
)

func init() {
	// A .env file is optional.
	_ = godotenv.Load()
}

type app struct {
	in       *bufio.Reader
	store    storage.Store
	sessions *session.Manager
	log      *zap.Logger
}

func main() {
	log := logger.New(os.Getenv("LOG_LEVEL"), os.Getenv("LOG_FORMAT"))
	defer log.Sync()

	ctx := context.Background()

	store, closeStore := openStore(ctx, log)
	defer closeStore()

	a := &app{
		in:       bufio.NewReader(os.Stdin),
		store:    store,
		sessions: session.NewManager(store),
		log:      log,
	}

	color.New(color.FgHiBlue, color.Bold).Println("\nSouConcursado")
	fmt.Println("Comece sua jornada no serviço público.")

	if err := a.ensureSession(ctx); err != nil {
		log.Fatal("login failed", zap.Error(err))
	}

	for {
		a.displayMenu()
		switch a.readLine("Opção: ") {
		case "1":
			a.runVocationalQuiz(ctx)
		case "2":
			a.showRecommendedContests(ctx)
		case "3":
			a.showProfileContests(ctx)
		case "4":
			a.runDiagnosis(ctx)
		case "5":
			a.showDiagnosisResults(ctx)
		case "6":
			a.runPracticeQuiz(ctx)
		case "7":
			if err := a.sessions.Logout(ctx); err != nil {
				a.warn("não foi possível encerrar a sessão", err)
			}
			fmt.Println("Sessão encerrada. Até logo!")
			return
		case "0":
			fmt.Println("Até logo!")
			return
		default:
			fmt.Println("Opção inválida.")
		}
	}
}

// openStore picks the persistence backend: Redis when REDIS_URL is set,
// otherwise a JSON state file. Failures fall back to in-memory state for
// the current run — persistence problems never block the app.
func openStore(ctx context.Context, log *zap.Logger) (storage.Store, func()) {
	if url := os.Getenv("REDIS_URL"); url != "" {
		rs, err := storage.NewRedisStore(ctx, url)
		if err == nil {
			return rs, func() { rs.Close() }
		}
		log.Warn("redis unavailable, falling back to local state", zap.Error(err))
	}

	path := os.Getenv("STATE_FILE")
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		path = filepath.Join(home, ".souconcursado", "state.json")
	}

	fs, err := storage.NewFileStore(path)
	if err != nil {
		log.Warn("state file unavailable, state lasts this session only", zap.Error(err))
		return storage.NewMemoryStore(), func() {}
	}
	return fs, func() {}
}

func (a *app) displayMenu() {
	color.New(color.FgCyan, color.Bold).Println("\n─── Menu ───")
	fmt.Println("1. Quiz vocacional")
	fmt.Println("2. Concursos recomendados (elegibilidade)")
	fmt.Println("3. Concursos do seu perfil")
	fmt.Println("4. Diagnóstico por matéria")
	fmt.Println("5. Resultados de diagnóstico")
	fmt.Println("6. Quiz de matéria")
	fmt.Println("7. Sair e encerrar sessão")
	fmt.Println("0. Sair")
}

// ── Session ─────────────────────────────────────────────

func (a *app) ensureSession(ctx context.Context) error {
	s, err := a.sessions.Resume(ctx)
	if err == nil {
		fmt.Printf("Bem-vindo de volta, %s!\n", s.User.Name)
		return nil
	}
	if !errors.Is(err, storage.ErrNotFound) {
		a.warn("não foi possível retomar a sessão", err)
	}

	for {
		mode := a.readLine("\n[1] Entrar  [2] Cadastrar: ")

		var name string
		if mode == "2" {
			name = a.readLine("Nome completo: ")
		}
		email := a.readLine("E-mail: ")
		password := a.readLine("Senha: ")

		fmt.Println("Autenticando...")
		var s *models.Session
		if mode == "2" {
			s, err = a.sessions.Register(ctx, name, email, password)
		} else {
			s, err = a.sessions.Login(ctx, email, password)
		}
		if err != nil {
			color.Red("Falha no login: %v", err)
			continue
		}
		fmt.Printf("Bem-vindo, %s!\n", s.User.Name)
		return nil
	}
}

// ── Vocational quiz ─────────────────────────────────────

func (a *app) runVocationalQuiz(ctx context.Context) {
	color.New(color.FgCyan, color.Bold).Println("\n─── Quiz Vocacional ───")

	answers := models.AnswerMap{}
	for i, q := range catalog.Questions {
		fmt.Printf("\n(%d/%d) %s\n", i+1, len(catalog.Questions), q.Prompt)
		answers[q.ID] = a.chooseOption(q.Options)
	}

	profile := matcher.Match(answers, catalog.Profiles)

	color.New(color.FgGreen, color.Bold).Printf("\nAnálise concluída! Seu perfil: %s\n", profile.Name)
	fmt.Println(profile.Description)

	a.persist(ctx, storage.KeyUserProfile, profile)
	a.persist(ctx, storage.KeyQuizAnswers, answers)
}

// ── Contest listings ────────────────────────────────────

func (a *app) showRecommendedContests(ctx context.Context) {
	profile, ok := a.loadProfile(ctx)
	if !ok {
		fmt.Println("Faça o quiz vocacional primeiro para receber recomendações.")
		return
	}

	var answers models.AnswerMap
	if !a.load(ctx, storage.KeyQuizAnswers, &answers) {
		fmt.Println("Respostas do quiz não encontradas; refaça o quiz vocacional.")
		return
	}

	matched := contests.Recommend(answers, profile.ID, catalog.Contests)
	color.New(color.FgCyan, color.Bold).Printf("\n%d concursos elegíveis para %s\n", len(matched), profile.Name)
	renderContests(matched)
}

func (a *app) showProfileContests(ctx context.Context) {
	profile, ok := a.loadProfile(ctx)
	if !ok {
		// Same behavior as the app's home screen: no profile, full catalog.
		color.New(color.FgCyan, color.Bold).Println("\nPerfil não definido — todos os concursos")
		renderContests(catalog.Contests)
		return
	}

	matched := contests.FilterByProfile(profile.ID, catalog.Contests)
	color.New(color.FgCyan, color.Bold).Printf("\nConcursos do perfil %s\n", profile.Name)
	renderContests(matched)
}

func renderContests(list []models.Contest) {
	if len(list) == 0 {
		fmt.Println("Nenhum concurso encontrado.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Instituição", "Cargo", "Salário", "Nível", "Status", "Requisitos"})
	for _, c := range list {
		table.Append([]string{
			c.Institution,
			c.Role,
			c.Salary,
			levelLabel(c.Level),
			statusLabel(c.Status),
			requirementTags(c.Requirements),
		})
	}
	table.Render()
}

func levelLabel(l models.ContestLevel) string {
	if l == models.LevelMedio {
		return "Médio"
	}
	return "Superior"
}

func statusLabel(s models.ContestStatus) string {
	switch s {
	case models.ContestOpen:
		return "Edital Aberto"
	case models.ContestSoon:
		return "Em Breve"
	default:
		return "Encerrado"
	}
}

func requirementTags(r models.ContestRequirements) string {
	var tags []string
	if r.RequiresCNH {
		tags = append(tags, "CNH")
	}
	if r.RequiresTAF {
		tags = append(tags, "TAF")
	}
	if r.MaxAge != nil {
		tags = append(tags, fmt.Sprintf("até %d anos", *r.MaxAge))
	}
	if len(tags) == 0 {
		return "-"
	}
	return strings.Join(tags, ", ")
}

// ── Diagnosis ───────────────────────────────────────────

func (a *app) runDiagnosis(ctx context.Context) {
	subject, ok := a.chooseSubject()
	if !ok {
		return
	}

	questions := diagnosis.SelectQuestions(a.log, subject.ID, catalog.DiagnosisBank(subject.ID))
	if len(questions) == 0 {
		fmt.Println("Nenhuma questão disponível para esta matéria.")
		return
	}

	color.New(color.FgCyan, color.Bold).Printf("\n─── Diagnóstico: %s ───\n", subject.Name)

	correct := 0
	for i, q := range questions {
		fmt.Printf("\n(%d/%d) [%s • %s %d • %s]\n", i+1, len(questions), q.Difficulty, q.Banca, q.Ano, q.Assunto)
		if q.ContextText != "" {
			fmt.Println(q.ContextText)
		}
		fmt.Println(q.Text)
		for j, opt := range q.Options {
			fmt.Printf("  %c) %s\n", 'A'+j, opt)
		}

		picked := a.readAnswerIndex(len(q.Options))
		if picked == q.CorrectAnswerIndex {
			correct++
			color.Green("Correto!")
		} else {
			color.Red("Incorreto. Resposta: %c", 'A'+q.CorrectAnswerIndex)
		}
		fmt.Println(q.Explanation)
	}

	result := diagnosis.Score(correct, len(questions))
	record := models.DiagnosisResult{
		SubjectID:      subject.ID,
		Level:          result.Level,
		Percentage:     result.Percentage,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		CompletedAt:    time.Now(),
	}

	color.New(color.FgGreen, color.Bold).Printf("\nVocê acertou %d de %d (%.0f%%) — nível %s\n",
		correct, len(questions), result.Percentage, result.Level)

	results := map[models.SubjectID]models.DiagnosisResult{}
	a.load(ctx, storage.KeyDiagnosisResults, &results)
	results[subject.ID] = record
	a.persist(ctx, storage.KeyDiagnosisResults, results)
}

func (a *app) showDiagnosisResults(ctx context.Context) {
	results := map[models.SubjectID]models.DiagnosisResult{}
	if !a.load(ctx, storage.KeyDiagnosisResults, &results) || len(results) == 0 {
		fmt.Println("Nenhum diagnóstico concluído ainda.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Matéria", "Nível", "Acertos", "Percentual", "Concluído em"})
	for _, subject := range catalog.Subjects {
		r, ok := results[subject.ID]
		if !ok {
			continue
		}
		table.Append([]string{
			subject.Name,
			string(r.Level),
			fmt.Sprintf("%d/%d", r.CorrectAnswers, r.TotalQuestions),
			fmt.Sprintf("%.0f%%", r.Percentage),
			r.CompletedAt.Format("02/01/2006 15:04"),
		})
	}
	table.Render()
}

// ── Practice quiz ───────────────────────────────────────

func (a *app) runPracticeQuiz(ctx context.Context) {
	subject, ok := a.chooseSubject()
	if !ok {
		return
	}

	questions := catalog.PracticeQuestions(subject.ID, subject.QuestionCount)
	color.New(color.FgCyan, color.Bold).Printf("\n─── Quiz: %s ───\n", subject.Name)

	correct := 0
	for i, q := range questions {
		fmt.Printf("\n(%d/%d) %s\n", i+1, len(questions), q.Prompt)
		picked := a.chooseOption(q.Options)
		if picked == q.CorrectAnswerID {
			correct++
		}
	}

	fmt.Printf("\nVocê acertou %d de %d.\n", correct, len(questions))

	results := map[models.SubjectID]models.QuizResult{}
	a.load(ctx, storage.KeyQuizResults, &results)
	results[subject.ID] = models.QuizResult{
		SubjectID:      subject.ID,
		CorrectAnswers: correct,
		TotalQuestions: len(questions),
		CompletedAt:    time.Now(),
	}
	a.persist(ctx, storage.KeyQuizResults, results)
}

// ── Input and persistence helpers ───────────────────────

func (a *app) readLine(prompt string) string {
	fmt.Print(prompt)
	line, _ := a.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// chooseOption renders numbered options and returns the chosen option id.
func (a *app) chooseOption(options []models.Option) string {
	for i, o := range options {
		fmt.Printf("  %d. %s\n", i+1, o.Label)
	}
	for {
		n, err := strconv.Atoi(a.readLine("Resposta: "))
		if err == nil && n >= 1 && n <= len(options) {
			return options[n-1].ID
		}
		fmt.Printf("Digite um número entre 1 e %d.\n", len(options))
	}
}

// readAnswerIndex reads a letter (A-E) and returns its zero-based index.
func (a *app) readAnswerIndex(count int) int {
	for {
		input := strings.ToUpper(a.readLine("Resposta: "))
		if len(input) == 1 {
			idx := int(input[0] - 'A')
			if idx >= 0 && idx < count {
				return idx
			}
		}
		fmt.Printf("Digite uma letra entre A e %c.\n", 'A'+count-1)
	}
}

func (a *app) chooseSubject() (models.Subject, bool) {
	fmt.Println("\nMatérias:")
	for i, s := range catalog.Subjects {
		fmt.Printf("  %d. %s\n", i+1, s.Name)
	}
	n, err := strconv.Atoi(a.readLine("Matéria (0 para voltar): "))
	if err != nil || n < 1 || n > len(catalog.Subjects) {
		return models.Subject{}, false
	}
	return catalog.Subjects[n-1], true
}

func (a *app) loadProfile(ctx context.Context) (models.Profile, bool) {
	var p models.Profile
	if !a.load(ctx, storage.KeyUserProfile, &p) || p.ID == "" {
		return models.Profile{}, false
	}
	return p, true
}

// persist stores v as JSON under key. Persistence failures are warned and
// swallowed: state stays usable in memory for the rest of the session.
func (a *app) persist(ctx context.Context, key string, v interface{}) {
	raw, err := json.Marshal(v)
	if err != nil {
		a.warn("não foi possível codificar o estado", err)
		return
	}
	if err := a.store.Set(ctx, key, string(raw)); err != nil {
		a.warn("não foi possível salvar o estado", err)
	}
}

// load fills v from the JSON stored under key, reporting whether it did.
func (a *app) load(ctx context.Context, key string, v interface{}) bool {
	raw, err := a.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			a.warn("não foi possível ler o estado", err)
		}
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		a.warn("estado salvo inválido", err)
		return false
	}
	return true
}

func (a *app) warn(msg string, err error) {
	a.log.Warn(msg, zap.Error(err))
}
