// Package story содержит встроенный сценарий новеллы.
package story

import "github.com/Mikan-DS/VK-NVL-bot/internal/engine"

// Имена персонажей.
const (
	sylvie = "Сильвия"
	me     = "Я"
)

// New возвращает сценарий новеллы. Прохождение стартует с метки "start";
// обе концовки через меню возвращают игрока к началу.
func New() *engine.Script {
	sc := engine.NewScript("start")
	sc.SetDefault("book", false)

	sc.AddLabel("start",
		engine.Show("photo-199752462_457239026"),
		engine.Say("Только когда я услышал шорох ног и сумок, я понял, что лекция кончилась."),
		engine.Say("Лекции профессора Эйлин обычно интересные, но сегодня я просто не смог сконцентрироваться."),
		engine.Say("У меня было много разных мыслей в голове… и все эти мысли кульминировались вопросом."),
		engine.Say("Вопросом, который я давно хотел задать определённому человеку."),
		engine.Show("photo-199752462_457239025"),
		engine.Say("Когда мы вышли из университета, я тут же заметил её."),
		engine.Show("photo-199752462_457239034"),
		engine.Say("Я знал Сильви ещё с тех лет, когда мы были детьми."+
			" У неё большое сердце и она всегда была мне хорошим другом."),
		engine.Say("Но в последнее время… Я почувствовал, что мне хочется чего-то большего."),
		engine.Say("Большего, чем просто разговоры. Больше, чем просто ходить домой вместе с концом наших занятий."),
		engine.Say("Как только мы встретились взглядами, я решил..."),
		engine.Menu(
			engine.Choice{Label: "Спросить её сейчас", Target: "rightaway"},
			engine.Choice{Label: "Подождать другого момента...", Target: "later"},
		),
	)

	sc.AddLabel("rightaway",
		engine.Show("photo-199752462_457239035"),
		engine.SayAs(sylvie, "Привет! Как тебе урок?"),
		engine.SayAs(me, "Хорошо…"),
		engine.SayAs(me, "Я не мог собраться и признать, что весь он сначала влетел в одно ухо, а затем вылетел в другом."),
		engine.SayAs(me, "Ты сейчас идёшь домой? Хочешь пройтись вместе со мной?"),
		engine.SayAs(me, "Конечно!"),
		engine.Show("photo-199752462_457239027"),
		engine.Say("Через некоторое время мы дошли до луга, начинавшегося за нашим родным городом, в котором мы жили."),
		engine.Say("Здесь живописный вид, к которому я уже привык. Осень здесь была особенно прекрасна."),
		engine.Say("Когда мы были детьми, мы много играли на этих лугах. Так много здесь воспоминаний."),
		engine.SayAs(me, "Эй… Эмм…"),
		engine.Show("photo-199752462_457239035"),
		engine.Say("Она повернулась ко мне и улыбнулась. "+
			"Она выглядела настолько дружелюбной, что вся моя нервозность улетучилась."),
		engine.SayAs("💭", "Я спрошу её..!"),
		engine.SayAs(me, "Эммм… Хотела бы ты…"),
		engine.SayAs(me, "Хотела бы ты стать художницей моей визуальной новеллы?"),
		engine.Show("photo-199752462_457239036"),
		engine.Say("Тишина."),
		engine.Say("Она выглядела столь шокированной, что я начал бояться худшего. Но затем…"),
		engine.Show("photo-199752462_457239036"),
		engine.SayAs(sylvie, "Конечно, но что такое \"визуальная новелла\"?"),
		engine.Menu(
			engine.Choice{Label: "Это видеоигра", Target: "game"},
			engine.Choice{Label: "Это интерактивная книга", Target: "book"},
		),
	)

	sc.AddLabel("game",
		engine.SayAs(me, "Это вроде видеоигры, в которую ты можешь играть на своём компьютере или консоли."),
		engine.SayAs(me, "Ну или, если разработчики знают толк в извращениях - то делают бота вк."),
		engine.SayAs(me, "В визуальных новеллах рассказывается история с картинками и музыкой."),
		engine.SayAs(me, "Иногда ты также можешь делать выборы, которые влияют на конец истории."),
		engine.SayAs(sylvie, "То есть это как те книги-игры?"),
		engine.SayAs(me, "Точно! У меня есть много разных идей, которые, по-моему, могут сработать."),
		engine.SayAs(me, "И я думал, что ты могла бы помочь мне… так как я знаю, как тебе нравится рисовать."),
		engine.SayAs(me, "Мне одному будет трудно делать визуальную новеллу."),
		engine.Show("photo-199752462_457239034"),
		engine.SayAs(me, "Ну конечно! Я могу попытаться. Надеюсь, я тебя не разочарую."),
		engine.SayAs(me, "Сильви, ты же знаешь, ты никогда не сможешь меня разочаровать."),
		engine.Jump("marry"),
	)

	sc.AddLabel("book",
		engine.Assign("book", func(*engine.Session) bool { return true }),
		engine.SayAs(me, "Это как интерактивная книга, которую ты можешь читать на компьютере или консоли."),
		engine.Show("photo-199752462_457239036"),
		engine.SayAs(sylvie, "Интерактивная?"),
		engine.SayAs(me, "Ты можешь делать выборы, которые ведут к различным событиям и концовкам истории."),
		engine.SayAs(sylvie, "А когда в дело вступает \"визуальная\" часть?"),
		engine.SayAs(me, "В визуальных новеллах есть картинки и даже музыка, звуковые эффекты, "+
			"и иногда озвучка, которая идёт наравне с текстом."),
		engine.SayAs(sylvie, "Ясно! Это определённо кажется весёлым."+
			" Если честно, я раньше делала веб-комиксы, так что у меня есть много идей."),
		engine.SayAs(me, "Это отлично! Так… ты хочешь работать со мной в качестве художницы?"),
		engine.SayAs(me, "Хочу!"),
		engine.Jump("marry"),
	)

	sc.AddLabel("marry",
		engine.Say("...\n\n\n...\n\n\n"),
		engine.Say("И так мы стали командой разработки визуальных новелл."),
		engine.Say("За долгие годы мы сделали много игр, получив при этом много веселья."),
		engine.If(func(s *engine.Session) bool { return s.Var("book") },
			engine.Say("Наша первая игра была основана на одной из идей Сильви, но затем я начал давать и свои идеи.")),
		engine.Say("Мы по очереди придумывали истории и персонажей, и поддерживали друг друга в разработке отличных игр!"),
		engine.Say("И в один день…"),
		engine.Show("photo-199752462_457239030"),
		engine.SayAs(sylvie, "Эй…"),
		engine.SayAs(sylvie, "Да?"),
		engine.Show("photo-199752462_457239029"),
		engine.SayAs(sylvie, "Ты женишься на мне?"),
		engine.SayAs(me, "Что? С чего это ты вдруг?"),
		engine.Show("photo-199752462_457239032"),
		engine.SayAs(sylvie, "Да ладно тебе, сколько мы уже встречаемся?"),
		engine.SayAs(me, "Некоторое время…"),
		engine.Show("photo-199752462_457239031"),
		engine.SayAs(sylvie, "Последнюю пару лет мы делаем визуальные новеллы и проводим время вместе, помогаем друг другу…"),
		engine.SayAs(sylvie, "Я узнала тебя и заботилась о тебе больше, чем о ком-либо ещё."+
			" И я думаю, что ты чувствуешь то же самое, верно?"),
		engine.SayAs(me, "Сильви…"),
		engine.Show("photo-199752462_457239029"),
		engine.SayAs(sylvie, "Но я знаю, что ты нерешительный. Если бы я сдержалась, кто знает, когда бы ты сделал мне предложение?"),
		engine.Show("photo-199752462_457239030"),
		engine.SayAs(sylvie, "Так ты женишься на мне?"),
		engine.SayAs(me, "Конечно, я женюсь! На самом деле я действительно хотел сделать тебе предложение, клянусь!"),
		engine.SayAs(sylvie, "Я знаю, знаю."),
		engine.SayAs(me, "Думаю… Я просто слишком волновался о времени. Я хотел задать правильный вопрос в правильное время."),
		engine.Show("photo-199752462_457239029"),
		engine.SayAs(sylvie, "Ты слишком сильно волнуешься. Если бы это была визуальная новелла, то я бы выбрала придать тебе смелости!"),
		engine.Say("...\n\n\n\n...\n\n\n\n"),
		engine.Show("photo-199752462_457239028"),
		engine.Say("Мы поженились вскоре после этого."),
		engine.Say("Наш дуэт разработки жил и после нашей свадьбы… и я изо всех сил старался стать решительнее."),
		engine.Say("Вместе мы жили долго и счастливо."),
		engine.Say("=============\n\n\n\n\n\n\n\n\nХорошая концовка"),
		engine.Menu(
			engine.Choice{Label: "Начать с начала", Target: "start"},
		),
	)

	sc.AddLabel("later",
		engine.Say("У меня не было сил собраться и спросить её в эту секунду. Сглотнув, я решил спросить её позже."),
		engine.Show("photo-199752462_457239028"),
		engine.Say("Но я был нерешителен."),
		engine.Say("Я не спросил у неё в тот день и не смог спросить больше никогда."),
		engine.Say("Полагаю, теперь я никогда не узнаю ответ на мой вопрос…"),
		engine.Say("=============\n\n\n\n\n\n\n\n\nПлохая концовка"),
		engine.Menu(
			engine.Choice{Label: "Начать с начала", Target: "start"},
		),
	)

	return sc
}
