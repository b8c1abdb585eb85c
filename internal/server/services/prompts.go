package services

const activityPrompt = `Analyze the following recent activities and provide structured feedback in Romanian about patterns, trends, and suggestions for improvement. Consider the timing, mood patterns, and nature of activities.

Recent activities:
%s

Please provide your analysis in Romanian, in these specific sections:
1. Tipare de Activitate și Relația cu Starea de Spirit: Analizează cum diferitele activități se corelează cu starea de spirit
2. Observații privind Managementul Timpului: Analizează tiparele de timp și programare
3. Sugestii pentru Optimizare: Oferă idei practice de îmbunătățire
4. Tendințe Notabile: Identifică orice tipare sau corelații semnificative

Keep each section concise but insightful, focusing on the most important observations. Provide ALL responses in Romanian.`

const thoughtsPrompt = `Analyze the following recent thoughts and provide structured feedback in Romanian about patterns, emotional states, and insights. Consider the timing, mood patterns, and content of thoughts.

Recent thoughts:
%s

Please provide your analysis in Romanian, in these specific sections:
1. Tipare de Gândire: Analizează temele recurente și tiparele de gândire
2. Perspective Emoționale: Analizează stările emoționale și factorii lor declanșatori
3. Sugestii: Oferă idei practice pentru bunăstarea emoțională
4. Tendințe Notabile: Identifică orice tipare sau corelații semnificative

Keep each section concise but insightful, focusing on the most important observations. Provide ALL responses in Romanian.`

const achievementsPrompt = `Analyze the following daily activities and thoughts with an emphasis on identifying and celebrating achievements, no matter how small. Take a very positive, encouraging perspective, and help counter any negative self-talk. Consider both explicit accomplishments and implicit wins.

Daily entries:
%s

Please provide your analysis in Romanian, in these specific sections:
1. Realizări Importante: Identifică și subliniază realizările majore ale zilei
2. Micile Victorii: Evidențiază progresele mici dar semnificative și momentele pozitive
3. Creștere Personală: Identifică aspectele care demonstrează dezvoltare personală sau auto-îmbunătățire
4. Tipare Pozitive: Subliniază comportamentele și gândurile constructive observate

Focus on being encouraging and supportive, while maintaining honesty. Help reframe challenges as opportunities for growth. Provide ALL responses in Romanian.`

// Messages returned instead of calling the model when today has no entries.
const (
	NoActivitiesMessage = "Nu există activități de analizat pentru ziua de azi."
	NoThoughtsMessage   = "Nu există gânduri de analizat pentru ziua de azi."
	NoEntriesMessage    = "Nu există înregistrări pentru ziua de azi."
)
