package nlp

// Léxico de valencias al estilo VADER, recortado al vocabulario que
// realmente aparece en posts de bienestar emocional. Valores en [-4, 4].
var sentimentLexicon = map[string]float64{
	// positivos
	"love": 3.2, "loved": 2.9, "loving": 2.9, "adore": 3.0,
	"great": 3.1, "good": 1.9, "nice": 1.8, "fine": 0.8, "okay": 0.9, "ok": 0.9,
	"happy": 2.7, "happiness": 2.7, "joy": 2.8, "joyful": 2.9, "delighted": 2.9,
	"excellent": 3.1, "wonderful": 2.7, "amazing": 2.8, "awesome": 3.1, "fantastic": 2.6,
	"grateful": 2.3, "gratitude": 2.3, "thankful": 2.2, "thanks": 1.9, "thank": 1.5,
	"hope": 1.9, "hopeful": 2.3, "optimistic": 2.0,
	"calm": 1.3, "peaceful": 2.2, "peace": 2.5, "relaxed": 1.9, "relief": 1.9, "relieved": 2.1,
	"excited": 2.4, "exciting": 2.2, "thrilled": 3.0,
	"proud": 2.1, "pride": 1.4, "accomplished": 1.9, "achievement": 2.0,
	"fun": 2.3, "enjoy": 2.2, "enjoyed": 2.3, "beautiful": 2.9, "lovely": 2.8,
	"best": 3.2, "better": 1.9, "win": 2.8, "won": 2.7, "success": 2.7, "successful": 2.8,
	"support": 1.7, "supportive": 2.0, "kind": 2.4, "kindness": 2.5, "care": 2.2, "caring": 2.2,
	"appreciate": 2.0, "appreciated": 2.1, "smile": 2.1, "laugh": 2.2, "laughed": 2.2,
	"friend": 2.2, "friends": 2.2, "together": 1.3, "helpful": 1.8, "helped": 1.7, "help": 1.7,
	"curious": 1.3, "learn": 1.4, "learned": 1.5, "explore": 1.4, "create": 1.3, "inspired": 2.3,
	"strong": 2.3, "stronger": 2.4, "confident": 2.3, "motivated": 2.0, "energized": 2.1,
	"blessed": 2.9, "blessing": 2.7, "glad": 2.0, "content": 1.4, "comfortable": 1.5,
	"progress": 1.8, "improve": 1.7, "improved": 1.9, "improving": 1.8, "healing": 1.9,
	"sunshine": 1.9, "bright": 1.9, "warm": 1.6, "safe": 1.7, "free": 1.8, "alive": 1.6,

	// negativos
	"sad": -2.1, "sadness": -2.1, "unhappy": -1.8, "depressed": -2.3, "depression": -2.2,
	"bad": -2.5, "terrible": -3.1, "awful": -2.0, "horrible": -2.5, "worst": -3.1,
	"hate": -2.7, "hated": -2.8, "hateful": -2.9, "angry": -2.3, "anger": -2.7, "furious": -2.9,
	"rage": -2.7, "annoyed": -1.7, "irritated": -1.9, "frustrated": -2.1, "frustrating": -2.1,
	"fear": -2.2, "afraid": -2.0, "scared": -2.2, "scary": -2.2, "terrified": -3.0,
	"anxious": -2.0, "anxiety": -2.1, "panic": -2.6, "worry": -1.9, "worried": -2.0,
	"nervous": -1.7, "restless": -1.4, "overthinking": -1.6, "stressed": -2.0, "stress": -1.9,
	"worthless": -2.7, "hopeless": -2.6, "helpless": -2.3, "useless": -2.1, "pointless": -1.9,
	"alone": -1.5, "lonely": -2.2, "loneliness": -2.2, "isolated": -1.9, "abandoned": -2.4,
	"tired": -1.4, "exhausted": -1.8, "drained": -1.8, "fatigue": -1.5, "insomnia": -1.9,
	"miserable": -2.8, "misery": -2.7, "cry": -1.9, "crying": -2.0, "cried": -1.9, "tears": -1.5,
	"pain": -2.3, "painful": -2.4, "hurt": -2.2, "hurts": -2.2, "hurting": -2.3, "suffering": -2.6,
	"fail": -2.3, "failed": -2.3, "failure": -2.5, "failing": -2.3, "lose": -1.9, "lost": -1.6,
	"guilty": -2.1, "guilt": -2.1, "shame": -2.2, "ashamed": -2.3, "regret": -2.0,
	"nightmare": -2.6, "nightmares": -2.6, "trauma": -2.4, "traumatic": -2.6, "abuse": -3.1,
	"flashback": -1.8, "flashbacks": -1.8, "assault": -2.9, "intrusive": -1.7,
	"suicide": -3.5, "suicidal": -3.4, "die": -2.8, "death": -2.9, "dead": -2.7, "kill": -3.2,
	"broken": -2.2, "empty": -1.7, "numb": -1.8, "dark": -1.4, "darkness": -1.7,
	"angst": -1.9, "dread": -2.3, "despair": -2.9, "grief": -2.5, "mourning": -2.2,
	"sick": -1.9, "hell": -2.6, "awkward": -1.2, "disgusting": -2.6, "disgust": -2.2,
	"paranoid": -2.1, "delusion": -1.9, "voices": -0.9, "hallucination": -1.9,
	"crisis": -2.3, "breakdown": -2.4, "overwhelmed": -1.9, "trapped": -2.1, "stuck": -1.4,
}

// Intensificadores y atenuadores (degree modifiers).
var boosterLexicon = map[string]float64{
	"absolutely": 0.293, "amazingly": 0.293, "completely": 0.293, "considerably": 0.293,
	"deeply": 0.293, "extremely": 0.293, "incredibly": 0.293, "really": 0.293,
	"remarkably": 0.293, "so": 0.293, "totally": 0.293, "utterly": 0.293, "very": 0.293,
	"almost": -0.293, "barely": -0.293, "hardly": -0.293, "kinda": -0.293,
	"marginally": -0.293, "occasionally": -0.293, "partly": -0.293, "scarcely": -0.293,
	"slightly": -0.293, "somewhat": -0.293, "sorta": -0.293,
}

// Marcadores de negación. El apóstrofe sobrevive a Normalize, así que las
// contracciones llegan intactas.
var negationWords = map[string]struct{}{
	"not": {}, "no": {}, "never": {}, "none": {}, "nothing": {}, "neither": {},
	"nor": {}, "nobody": {}, "cannot": {}, "without": {}, "rarely": {}, "seldom": {},
	"can't": {}, "don't": {}, "won't": {}, "isn't": {}, "wasn't": {}, "aren't": {},
	"weren't": {}, "didn't": {}, "doesn't": {}, "couldn't": {}, "shouldn't": {},
	"wouldn't": {}, "ain't": {}, "hasn't": {}, "haven't": {},
}
