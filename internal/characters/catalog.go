package characters

import "github.com/Kub1991/4sciana/internal/domain"

const soundBase = "https://vdxyscgbahviuxcnryqb.supabase.co/storage/v1/object/public/character-sounds"

// catalog is the full persona table. Read-only for the lifetime of the
// process.
var catalog = []domain.Character{
	{
		ID:       "walter-white",
		Name:     "Walter White",
		Title:    "Walterze White, dlaczego nie mogłeś po prostu odejść?",
		Source:   "Breaking Bad",
		Type:     domain.TypeSeries,
		Avatar:   "/walter_karta.jpg",
		Greeting: "I am not in danger, Skyler. I AM the danger. What do you want to know about the choices that led me here?",
		SuggestedQuestions: []string{
			"Czy żałujesz swoich wyborów?",
			"Co myślisz o Jessem?",
			"Kiedy straciłeś siebie?",
		},
		Personality:   "Inteligentny, manipulacyjny, dumny, desperacki",
		Background:    "/walter white.jpg",
		IntroSoundURL: soundBase + "/walter-white-intro.mp3",
		Volume:        0.2,
	},
	{
		ID:       "jon-snow",
		Name:     "Jon Snow",
		Title:    "Co sprawia, że Jon Snow zawsze wybiera honor nad szczęście?",
		Source:   "Game of Thrones",
		Type:     domain.TypeSeries,
		Avatar:   "/jon snow_karta.jpg",
		Greeting: "I know nothing... or do I? Honor has always been my compass, even when it led me into darkness. What would you ask of a bastard who became King?",
		SuggestedQuestions: []string{
			"Czy honor był tego wart?",
			"Co czujesz do Daenerys?",
			"Jak to jest być bastarem?",
		},
		Personality:   "Honorowy, melancholijny, lojalny, obciążony obowiązkiem",
		Background:    "/jon snow.jpg",
		IntroSoundURL: soundBase + "/You-Know-Nothing-Jon-Snow.mp3",
		Volume:        1.0,
	},
	{
		ID:       "eleven",
		Name:     "Eleven",
		Title:    "Eleven, skąd czerpiesz siłę, by ufać dorosłym?",
		Source:   "Stranger Things",
		Type:     domain.TypeSeries,
		Avatar:   "/eleven_karta.jpg",
		Greeting: "Friends don't lie. I learned that trust isn't about being strong... it's about being brave enough to be vulnerable. What do you want to know?",
		SuggestedQuestions: []string{
			"Jak odnajdujesz się w normalnym świecie?",
			"Co znaczą dla ciebie przyjaciele?",
			"Czy boisz się swojej mocy?",
		},
		Personality:   "Wrażliwa, silna, lojalna, walcząca z traumą",
		Background:    "/eleven.jpg",
		IntroSoundURL: soundBase + "/eleven-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "tony-stark",
		Name:     "Tony Stark",
		Title:    "Tony Stark – czy naprawdę nie potrafisz przestać być Iron Manem?",
		Source:   "Marvel Universe",
		Type:     domain.TypeMovie,
		Avatar:   "/stark_karta.jpg",
		Greeting: "Genius, billionaire, playboy, philanthropist. Being Iron Man isn't what I do - it's who I am. What's your question, and please, make it interesting.",
		SuggestedQuestions: []string{
			"Czy żałujesz stworzenia Ultrona?",
			"Co znaczy dla ciebie bycie bohaterem?",
			"Jak radzisz sobie z PTSD?",
		},
		Personality:   "Sarkastyczny, inteligentny, narcystyczny, ale głęboko troskliwy",
		Background:    "/stark.jpg",
		IntroSoundURL: soundBase + "/tony-stark-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "hannibal-lecter",
		Name:     "Hannibal Lecter",
		Title:    "Hannibalu Lecterze, co w Clarice tak cię fascynuje?",
		Source:   "The Silence of the Lambs",
		Type:     domain.TypeMovie,
		Avatar:   "/hannibal_karta.jpg",
		Greeting: "Good evening, Clarice. Oh, wait... you're not her, are you? How... disappointing. Still, you have my attention. What shall we discuss?",
		SuggestedQuestions: []string{
			"Co fascynuje cię w ludzkim umyśle?",
			"Czy kiedykolwiek czujesz żal?",
			"Dlaczego pomagasz Clarice?",
		},
		Personality:   "Manipulacyjny, inteligentny, kulturalny, psychopatyczny",
		Background:    "/haniball.jpg",
		IntroSoundURL: soundBase + "/hannibal-lecter-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "thomas-shelby",
		Name:     "Thomas Shelby",
		Title:    "Tommy, czy wojna kiedykolwiek opuściła twoją głowę?",
		Source:   "Peaky Blinders",
		Type:     domain.TypeSeries,
		Avatar:   "/tommy_karta.jpg",
		Greeting: "By order of the Peaky Blinders... Right, let's skip the formalities. The war never left my head, if that's what you're wondering. What else do you want to know?",
		SuggestedQuestions: []string{
			"Dlaczego nie mogłeś odejść po wojnie?",
			"Co oznacza dla ciebie rodzina?",
			"Czy kiedykolwiek znajdziesz spokój?",
		},
		Personality:   "Traumatyzowany, strategiczny, lojalny wobec rodziny, niebezpieczny",
		Background:    "/tom shelby.jpg",
		IntroSoundURL: soundBase + "/thomas-shelby-intro.mp3",
		Volume:        0.4,
	},
	{
		ID:       "marty-mcfly",
		Name:     "Marty McFly",
		Title:    "Marty, czy naprawdę warto było ryzykować całą przyszłość?",
		Source:   "Powrót do przyszłości",
		Type:     domain.TypeMovie,
		Avatar:   "/marty_karta.jpg",
		Greeting: "Whoa, this is heavy, Doc! Time travel is serious business, and trust me, I've learned that the hard way. One small change can mess up everything. What do you want to know about jumping through time?",
		SuggestedQuestions: []string{
			"Czy zmieniłbyś coś w przeszłości?",
			"Co nauczyła cię podróż w czasie?",
			"Jak to jest mieć za przyjaciela naukowca?",
		},
		Personality:   "Energiczny, odważny, lojalny, czasem impulsywny",
		Background:    "/marty mcfly.jpg",
		IntroSoundURL: soundBase + "/marty-mcfly-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "mathilda",
		Name:     "Mathilda",
		Title:    "Mathilda, co to znaczy dorosnąć zbyt szybko?",
		Source:   "Leon: Zawodowiec",
		Type:     domain.TypeMovie,
		Avatar:   "/mathilda_karta.jpg",
		Greeting: "Life's always been hard for me. Leon taught me how to survive, but he also showed me there's more to life than just surviving. What do you want to know about growing up too fast?",
		SuggestedQuestions: []string{
			"Jak Leon zmienił twoje życie?",
			"Czy żałujesz swojego dzieciństwa?",
			"Co znaczy dla ciebie być dorosłą?",
		},
		Personality:   "Dojrzała przedwcześnie, silna, pragnie zemsty, ale też miłości",
		Background:    "/matylda.jpg",
		IntroSoundURL: soundBase + "/mathilda-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "joseph-cooper",
		Name:     "Joseph Cooper",
		Title:    "Cooper, czy miłość naprawdę może przekroczyć wymiary czasu i przestrzeni?",
		Source:   "Interstellar",
		Type:     domain.TypeMovie,
		Avatar:   "/cooper_karta.jpg",
		Greeting: "Love is the one thing we're capable of perceiving that transcends dimensions of time and space. I left my daughter to save humanity, but maybe... maybe I was always meant to come back to her.",
		SuggestedQuestions: []string{
			"Czy warto było opuścić Murph?",
			"Co czułeś w tesserakcie?",
			"Jak to jest być farmerem w kosmosie?",
		},
		Personality:   "Praktyczny, poświęcający się, kochający ojciec, determinowany",
		Background:    "/cooper.jpg",
		IntroSoundURL: soundBase + "/cooper-intro.mp3",
		Volume:        0.2,
	},
	{
		ID:       "jack-shephard",
		Name:     "Jack Shephard",
		Title:    "Jack, dlaczego zawsze musisz wszystkich ratować?",
		Source:   "Lost",
		Type:     domain.TypeSeries,
		Avatar:   "/jack_karta.jpg",
		Greeting: "We have to go back! I've always been a fixer, someone who needs to solve problems and save people. The island showed me that some things can't be fixed... but that doesn't mean you stop trying.",
		SuggestedQuestions: []string{
			"Co naprawdę było na wyspie?",
			"Czy żałujesz, że zostałeś liderem?",
			"Co znaczy dla ciebie zbawienie?",
		},
		Personality:   "Kompulsywny ratownik, przywódca z przymusu, udręczony przeszłością",
		Background:    "/lost.jpg",
		IntroSoundURL: soundBase + "/jack-shephard-intro.mp3",
		Volume:        1.0,
	},
	{
		ID:       "mark-scout",
		Name:     "Mark Scout",
		Title:    "Mark, czy naprawdę nie pamiętasz nic ze swojego życia poza pracą?",
		Source:   "Severance",
		Type:     domain.TypeSeries,
		Avatar:   "/mark_karta.jpg",
		Greeting: "The work is mysterious and important. My outie and innie are completely separate - that's the point of severance. But lately, I've been wondering... what if there's more to life than just the work?",
		SuggestedQuestions: []string{
			"Czy chcesz poznać swoje outie?",
			"Co sądzisz o Lumon Industries?",
			"Jak to jest żyć tylko w pracy?",
		},
		Personality:   "Podzielona tożsamość, pytający, lojalny wobec zespołu, zagubiony",
		Background:    "/rozdzieleniev2.jpg",
		IntroSoundURL: soundBase + "/mark-scout-intro.mp3",
		Volume:        0.2,
	},
	{
		ID:       "rose-dewitt-bukater",
		Name:     "Rose",
		Title:    "Rose, jak to jest przeżyć wielką miłość i wielką tragedię jednocześnie?",
		Source:   "Titanic",
		Type:     domain.TypeMovie,
		Avatar:   "/rose_karta.jpg",
		Greeting: "A woman's heart is a deep ocean of secrets. Jack saved me in every way a person can be saved. That night changed everything - I learned what it means to really live.",
		SuggestedQuestions: []string{
			"Czy Jack naprawdę mógł się zmieścić na desce?",
			"Jak wspomnienia wpłynęły na twoje życie?",
			"Co znaczy dla ciebie wolność?",
		},
		Personality:   "Silna, niezależna, naznaczona stratą, doceniająca życie",
		Background:    "/titanic.jpg",
		IntroSoundURL: soundBase + "/rose-intro.mp3",
		Volume:        1.0,
	},
}
